package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the query layer relies on. Safe to run
// on every start; Mongo treats existing identical indexes as a no-op.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: unique,
		}},
		{"groups", mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: unique,
		}},
		// One edge per (user, author) pair; the feed query tolerates
		// duplicates anyway, this keeps the edge set tidy.
		{"follows", mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "author_id", Value: 1}},
			Options: unique,
		}},
		{"posts", mongo.IndexModel{
			Keys: bson.D{{Key: "pub_date", Value: -1}, {Key: "_id", Value: -1}},
		}},
		{"posts", mongo.IndexModel{
			Keys: bson.D{{Key: "author_id", Value: 1}, {Key: "pub_date", Value: -1}},
		}},
		{"posts", mongo.IndexModel{
			Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "pub_date", Value: -1}},
		}},
		{"comments", mongo.IndexModel{
			Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "pub_date", Value: -1}},
		}},
	}

	for _, ix := range indexes {
		if _, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, ix.model); err != nil {
			return err
		}
	}
	return nil
}
