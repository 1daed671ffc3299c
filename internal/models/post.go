package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organizer is the sub-record describing who published a volunteer post.
// It carries its own overflow map so nested client fields survive too.
type Organizer struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Email string `json:"email" bson:"email"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
	Extra bson.M `json:"-" bson:",inline"`
}

var organizerFields = []string{"name", "email", "photo"}

func (o Organizer) MarshalJSON() ([]byte, error) {
	type alias Organizer
	return marshalWithExtra(alias(o), o.Extra, false)
}

func (o *Organizer) UnmarshalJSON(data []byte) error {
	type alias Organizer
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, organizerFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*o = Organizer(a)
	return nil
}

// Post represents a volunteer-need listing stored in MongoDB. Clients may
// send fields beyond the declared ones; those survive in Extra, both in the
// database (bson inline) and on the JSON surface (custom codec below).
type Post struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Thumbnail          string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	PostTitle          string             `json:"post_title,omitempty" bson:"post_title,omitempty"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	Category           string             `json:"category,omitempty" bson:"category,omitempty"`
	Location           string             `json:"location,omitempty" bson:"location,omitempty"`
	NoOfVolunteerNeeds int                `json:"no_of_volunteer_needs" bson:"no_of_volunteer_needs"`
	Deadline           string             `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Organizer          Organizer          `json:"organizer" bson:"organizer"`
	Extra              bson.M             `json:"-" bson:",inline"`
}

// postFields lists the JSON keys handled by the declared struct fields.
var postFields = []string{
	"_id", "thumbnail", "post_title", "description", "category",
	"location", "no_of_volunteer_needs", "deadline", "organizer",
}

func (p Post) MarshalJSON() ([]byte, error) {
	type alias Post
	return marshalWithExtra(alias(p), p.Extra, p.ID.IsZero())
}

func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	extra, err := unmarshalExtra(data, postFields)
	if err != nil {
		return err
	}
	a.Extra = extra
	*p = Post(a)
	return nil
}
