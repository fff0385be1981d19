package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is a text entry by an author, optionally filed under a group and
// optionally carrying an image URL. PubDate is set once at creation and is
// the sole ordering key for every feed (newest first, _id as tiebreaker).
type Post struct {
	ID       bson.ObjectID  `json:"id"                bson:"_id,omitempty"`
	AuthorID bson.ObjectID  `json:"authorId"          bson:"author_id"`
	GroupID  *bson.ObjectID `json:"groupId,omitempty" bson:"group_id,omitempty"`
	Text     string         `json:"text"              bson:"text"`
	Image    string         `json:"image,omitempty"   bson:"image,omitempty"`
	PubDate  time.Time      `json:"pubDate"           bson:"pub_date"`
}
