package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerRequest is an application a volunteer submits against a Post.
// The client copies the descriptive post fields onto the request so the
// "my requests" views can render without a join. PostID stays a hex string
// in the document, matching how the original data set stores it.
type VolunteerRequest struct {
	ID                    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email                 string             `json:"email" bson:"email"`
	PostID                string             `json:"postId" bson:"postId"`
	Thumbnail             string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	PostTitle             string             `json:"post_title,omitempty" bson:"post_title,omitempty"`
	Description           string             `json:"description,omitempty" bson:"description,omitempty"`
	Category              string             `json:"category,omitempty" bson:"category,omitempty"`
	Location              string             `json:"location,omitempty" bson:"location,omitempty"`
	Deadline              string             `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Status                string             `json:"status,omitempty" bson:"status,omitempty"`
	RequestEmail          string             `json:"request_email" bson:"request_email"`
	RequestOrganizerEmail string             `json:"request_organizer_email" bson:"request_organizer_email"`
	Extra                 bson.M             `json:"-" bson:",inline"`
}

var requestFields = []string{
	"_id", "email", "postId", "thumbnail", "post_title", "description",
	"category", "location", "deadline", "status", "request_email",
	"request_organizer_email",
}

func (r VolunteerRequest) MarshalJSON() ([]byte, error) {
	type alias VolunteerRequest
	return marshalWithExtra(alias(r), r.Extra, r.ID.IsZero())
}

func (r *VolunteerRequest) UnmarshalJSON(data []byte) error {
	type alias VolunteerRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, requestFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*r = VolunteerRequest(a)
	return nil
}
