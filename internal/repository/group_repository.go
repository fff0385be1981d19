package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogspace/model"
)

type GroupRepository interface {
	BySlug(ctx context.Context, slug string) (model.Group, error)
	ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

type mongoGroupRepo struct {
	col *mongo.Collection
}

func NewMongoGroupRepo(db *mongo.Database) GroupRepository {
	return &mongoGroupRepo{col: db.Collection("groups")}
}

func (r *mongoGroupRepo) BySlug(ctx context.Context, slug string) (model.Group, error) {
	var g model.Group
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Group{}, ErrNotFound
	}
	return g, err
}

func (r *mongoGroupRepo) ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Group, error) {
	out := make(map[bson.ObjectID]model.Group, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []model.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		out[g.ID] = g
	}
	return out, nil
}

func (r *mongoGroupRepo) List(ctx context.Context) ([]model.Group, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []model.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
