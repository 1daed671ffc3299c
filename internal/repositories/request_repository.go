package repositories

import (
	"context"
	"fmt"

	"github.com/gobindacb/soul-share-server/internal/models"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequestRepository defines the interface for volunteer request data operations
type RequestRepository interface {
	Create(ctx context.Context, request *models.VolunteerRequest) (*models.InsertResult, error)
	ListByRequesterEmail(ctx context.Context, email string) ([]models.VolunteerRequest, error)
	ListByOrganizerEmail(ctx context.Context, email string) ([]models.VolunteerRequest, error)
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}

// MongoRequestRepository implements RequestRepository for MongoDB. It holds
// the post repository so an accepted request can adjust the linked post's
// volunteer counter.
type MongoRequestRepository struct {
	collection *mongo.Collection
	posts      PostRepository
}

// NewMongoRequestRepository creates a new MongoRequestRepository
func NewMongoRequestRepository(db *mongo.Database, posts PostRepository) *MongoRequestRepository {
	return &MongoRequestRepository{collection: db.Collection("requests"), posts: posts}
}

// Create stores a volunteer request unless one already exists for the same
// (email, postId) pair, then decrements the linked post's open-slots counter.
//
// The duplicate guard is a find followed by an unconditional insert, with no
// unique index behind it: two concurrent identical submissions can both pass
// the check. The insert and the decrement are likewise two independent
// writes. Both properties are kept from the original service; the decrement
// is best-effort and its failure is logged, never surfaced.
func (r *MongoRequestRepository) Create(ctx context.Context, request *models.VolunteerRequest) (*models.InsertResult, error) {
	filter := bson.M{"email": request.Email, "postId": request.PostID}
	err := r.collection.FindOne(ctx, filter).Err()
	if err == nil {
		return nil, ErrDuplicateRequest
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	res, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := r.posts.DecrementVolunteerNeeds(ctx, request.PostID); err != nil {
		log.Warn().Err(err).Str("postId", request.PostID).
			Msg("volunteer needs decrement failed after request insert")
	}
	return models.NewInsertResult(res), nil
}

// ListByRequesterEmail retrieves all requests submitted by the given volunteer.
func (r *MongoRequestRepository) ListByRequesterEmail(ctx context.Context, email string) ([]models.VolunteerRequest, error) {
	return r.list(ctx, bson.M{"request_email": email})
}

// ListByOrganizerEmail retrieves all requests targeting the given organizer's posts.
func (r *MongoRequestRepository) ListByOrganizerEmail(ctx context.Context, email string) ([]models.VolunteerRequest, error) {
	return r.list(ctx, bson.M{"request_organizer_email": email})
}

// DeleteByID removes a request and returns the acknowledgement.
func (r *MongoRequestRepository) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
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

func (r *MongoRequestRepository) list(ctx context.Context, filter bson.M) ([]models.VolunteerRequest, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []models.VolunteerRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
