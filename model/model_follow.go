package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Follow is a directed edge: UserID wants AuthorID's posts in their
// personalized feed. A unique compound index on (user_id, author_id) keeps
// the edge set duplicate-free, but feed queries tolerate duplicates anyway.
type Follow struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	UserID   bson.ObjectID `json:"userId"   bson:"user_id"`
	AuthorID bson.ObjectID `json:"authorId" bson:"author_id"`
}
