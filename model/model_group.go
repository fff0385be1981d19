package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Group is a category a post may be filed under. Groups are created
// administratively and addressed by their unique slug.
type Group struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Description string        `json:"description" bson:"description"`
	Slug        string        `json:"slug"        bson:"slug"`
}
