package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment belongs to exactly one post at creation time. Listed newest
// first within the post's detail page.
type Comment struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	PostID   bson.ObjectID `json:"postId"   bson:"post_id"`
	AuthorID bson.ObjectID `json:"authorId" bson:"author_id"`
	Text     string        `json:"text"     bson:"text"`
	PubDate  time.Time     `json:"pubDate"  bson:"pub_date"`
}
