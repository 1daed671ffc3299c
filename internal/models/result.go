package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Write acknowledgements, shaped like the MongoDB Node driver's results so
// the JSON surface stays compatible with the existing frontend.

type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

func NewInsertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}
}

func NewDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func NewUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	out := &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = hexID(res.UpsertedID)
	}
	return out
}

func hexID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
