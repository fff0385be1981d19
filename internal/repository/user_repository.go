package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogspace/model"
)

type UserRepository interface {
	ByUsername(ctx context.Context, username string) (model.User, error)
	ByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error)
	// Create inserts the account; ErrDuplicate when the username is taken.
	Create(ctx context.Context, u *model.User) error
}

type mongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{col: db.Collection("users")}
}

func (r *mongoUserRepo) ByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (r *mongoUserRepo) ByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (r *mongoUserRepo) ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	out := make(map[bson.ObjectID]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *mongoUserRepo) Create(ctx context.Context, u *model.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, u)
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// isDuplicateKey reports whether err is a unique-index violation (Mongo
// error code 11000).
func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
