package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port              string
	MongoURI          string
	AccessTokenSecret string
	AllowedOrigins    []string
}

// defaultOrigins are the frontend origins allowed to send credentialed
// cross-origin requests.
const defaultOrigins = "http://localhost:5173,http://localhost:5174,https://soul-share-23173.web.app"

const defaultDBHost = "cluster0.jakl9vf.mongodb.net"

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, assuming environment variables are set")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", defaultOrigins)),
	}
	if cfg.MongoURI == "" {
		user := url.QueryEscape(os.Getenv("DB_USER"))
		pass := url.QueryEscape(os.Getenv("DB_PASS"))
		cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
			user, pass, getEnv("DB_HOST", defaultDBHost))
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(originsStr string) []string {
	origins := strings.Split(originsStr, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
