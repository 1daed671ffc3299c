package repositories

import (
	"context"
	"fmt"

	"github.com/gobindacb/soul-share-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for volunteer post data operations
type PostRepository interface {
	ListUpcoming(ctx context.Context, limit int64) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.InsertResult, error)
	ListByOrganizerEmail(ctx context.Context, email string) ([]models.Post, error)
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
	UpsertByID(ctx context.Context, id string, fields bson.M) (*models.UpdateResult, error)
	DecrementVolunteerNeeds(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// ListUpcoming retrieves the posts with the nearest deadlines, ascending.
// Posts sharing a deadline come back in the store's natural order.
func (r *MongoPostRepository) ListUpcoming(ctx context.Context, limit int64) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAll retrieves every post.
func (r *MongoPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a post by ID. A missing post is (nil, nil), not an
// error; the route answers it with a null body.
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post verbatim and returns the insert acknowledgement.
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) (*models.InsertResult, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	res, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	return models.NewInsertResult(res), nil
}

// ListByOrganizerEmail retrieves all posts published by the given organizer.
func (r *MongoPostRepository) ListByOrganizerEmail(ctx context.Context, email string) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organizer.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// DeleteByID removes a post. Deleting an unknown ID is not an error; the
// acknowledgement carries a zero count.
func (r *MongoPostRepository) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, err
	}
	return models.NewDeleteResult(res), nil
}

// UpsertByID writes the supplied fields onto the post matching id,
// inserting under that id when no post matches. Only keys present in the
// request body are $set, so a partial edit leaves the other fields alone.
// The upsert means a PUT to a well-formed unknown id creates a record; that
// mirrors the existing API contract and is relied on by the edit flow.
func (r *MongoPostRepository) UpsertByID(ctx context.Context, id string, fields bson.M) (*models.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := bson.M{}
	for k, v := range fields {
		if k != "_id" {
			set[k] = v
		}
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return models.NewUpdateResult(res), nil
}

// DecrementVolunteerNeeds lowers a post's open volunteer slots by one.
// There is no zero floor; the counter may go negative.
func (r *MongoPostRepository) DecrementVolunteerNeeds(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"no_of_volunteer_needs": -1}})
	return err
}
