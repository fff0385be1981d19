package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogspace/model"
)

type PostRepository interface {
	// List methods return every matching post, newest first. Result sets
	// are small by design; the paginator slices them in memory.
	ListAll(ctx context.Context) ([]model.Post, error)
	ListByGroup(ctx context.Context, groupID bson.ObjectID) ([]model.Post, error)
	ListByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []bson.ObjectID) ([]model.Post, error)

	ByID(ctx context.Context, id bson.ObjectID) (model.Post, error)
	Create(ctx context.Context, p *model.Post) error
	// Update rewrites the mutable fields (text, group, image) and leaves
	// pub_date untouched.
	Update(ctx context.Context, p model.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type mongoPostRepo struct {
	col *mongo.Collection
}

func NewMongoPostRepo(db *mongo.Database) PostRepository {
	return &mongoPostRepo{col: db.Collection("posts")}
}

func (r *mongoPostRepo) list(ctx context.Context, filter bson.M) ([]model.Post, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(feedSort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *mongoPostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoPostRepo) ListByGroup(ctx context.Context, groupID bson.ObjectID) ([]model.Post, error) {
	return r.list(ctx, bson.M{"group_id": groupID})
}

func (r *mongoPostRepo) ListByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error) {
	return r.list(ctx, bson.M{"author_id": authorID})
}

func (r *mongoPostRepo) ListByAuthors(ctx context.Context, authorIDs []bson.ObjectID) ([]model.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, bson.M{"author_id": bson.M{"$in": authorIDs}})
}

func (r *mongoPostRepo) ByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}

func (r *mongoPostRepo) Create(ctx context.Context, p *model.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *mongoPostRepo) Update(ctx context.Context, p model.Post) error {
	set := bson.M{"text": p.Text}
	unset := bson.M{}
	if p.GroupID != nil {
		set["group_id"] = *p.GroupID
	} else {
		unset["group_id"] = ""
	}
	if p.Image != "" {
		set["image"] = p.Image
	} else {
		unset["image"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
