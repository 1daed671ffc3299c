package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/gobindacb/soul-share-server/internal/models"
	"github.com/gobindacb/soul-share-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the handler tests.

type fakePostRepo struct {
	posts map[string]models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]models.Post{}}
}

func (f *fakePostRepo) ListUpcoming(_ context.Context, limit int64) ([]models.Post, error) {
	all := f.all()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Deadline < all[j].Deadline })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakePostRepo) ListAll(context.Context) ([]models.Post, error) {
	return f.all(), nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	if post, ok := f.posts[id]; ok {
		return &post, nil
	}
	return nil, nil
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) (*models.InsertResult, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.posts[post.ID.Hex()] = *post
	return &models.InsertResult{Acknowledged: true, InsertedID: post.ID.Hex()}, nil
}

func (f *fakePostRepo) ListByOrganizerEmail(_ context.Context, email string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.all() {
		if p.Organizer.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) DeleteByID(_ context.Context, id string) (*models.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	res := &models.DeleteResult{Acknowledged: true}
	if _, ok := f.posts[id]; ok {
		delete(f.posts, id)
		res.DeletedCount = 1
	}
	return res, nil
}

// UpsertByID applies the supplied fields onto the stored post the way a
// Mongo $set would: untouched fields keep their values.
func (f *fakePostRepo) UpsertByID(_ context.Context, id string, fields bson.M) (*models.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInvalidID
	}
	res := &models.UpdateResult{Acknowledged: true}
	stored, ok := f.posts[id]
	if ok {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	} else {
		res.UpsertedCount = 1
		res.UpsertedID = id
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range fields {
		if k != "_id" {
			doc[k] = v
		}
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.Post
	if err := json.Unmarshal(merged, &updated); err != nil {
		return nil, err
	}
	updated.ID = objID
	f.posts[id] = updated
	return res, nil
}

func (f *fakePostRepo) DecrementVolunteerNeeds(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repositories.ErrInvalidID
	}
	post, ok := f.posts[id]
	if !ok {
		return nil
	}
	post.NoOfVolunteerNeeds--
	f.posts[id] = post
	return nil
}

func (f *fakePostRepo) all() []models.Post {
	out := []models.Post{}
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

// brokenCounterPostRepo fails every decrement, for exercising the
// best-effort counter update.
type brokenCounterPostRepo struct {
	*fakePostRepo
}

func (f *brokenCounterPostRepo) DecrementVolunteerNeeds(context.Context, string) error {
	return errors.New("counter update failed")
}

type fakeRequestRepo struct {
	requests map[string]models.VolunteerRequest
	posts    repositories.PostRepository
}

func newFakeRequestRepo(posts repositories.PostRepository) *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]models.VolunteerRequest{}, posts: posts}
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.VolunteerRequest) (*models.InsertResult, error) {
	for _, r := range f.requests {
		if r.Email == request.Email && r.PostID == request.PostID {
			return nil, repositories.ErrDuplicateRequest
		}
	}
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	f.requests[request.ID.Hex()] = *request
	_ = f.posts.DecrementVolunteerNeeds(ctx, request.PostID)
	return &models.InsertResult{Acknowledged: true, InsertedID: request.ID.Hex()}, nil
}

func (f *fakeRequestRepo) ListByRequesterEmail(_ context.Context, email string) ([]models.VolunteerRequest, error) {
	out := []models.VolunteerRequest{}
	for _, r := range f.requests {
		if r.RequestEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByOrganizerEmail(_ context.Context, email string) ([]models.VolunteerRequest, error) {
	out := []models.VolunteerRequest{}
	for _, r := range f.requests {
		if r.RequestOrganizerEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) DeleteByID(_ context.Context, id string) (*models.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repositories.ErrInvalidID
	}
	res := &models.DeleteResult{Acknowledged: true}
	if _, ok := f.requests[id]; ok {
		delete(f.requests, id)
		res.DeletedCount = 1
	}
	return res, nil
}
