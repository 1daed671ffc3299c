package config

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitDB connects a MongoDB client pinned to Stable API v1 and verifies the
// connection with a ping. The client is shared for the process lifetime.
func InitDB(cfg *Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	log.Info().Msg("successfully connected to MongoDB")
	return client, nil
}

// CloseDB disconnects the MongoDB client.
func CloseDB(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("error closing MongoDB connection")
		return
	}
	log.Info().Msg("MongoDB connection closed")
}
