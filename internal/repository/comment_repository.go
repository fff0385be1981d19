package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogspace/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	// ListByPost returns up to limit comments, newest first.
	ListByPost(ctx context.Context, postID bson.ObjectID, limit int64) ([]model.Comment, error)
	DeleteByPost(ctx context.Context, postID bson.ObjectID) error
}

type mongoCommentRepo struct {
	col *mongo.Collection
}

func NewMongoCommentRepo(db *mongo.Database) CommentRepository {
	return &mongoCommentRepo{col: db.Collection("comments")}
}

func (r *mongoCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *mongoCommentRepo) ListByPost(ctx context.Context, postID bson.ObjectID, limit int64) ([]model.Comment, error) {
	opts := options.Find().SetSort(feedSort)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cur, err := r.col.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []model.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *mongoCommentRepo) DeleteByPost(ctx context.Context, postID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"post_id": postID})
	return err
}
