package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"blogspace/model"
)

type FollowRepository interface {
	// Create inserts the edge; inserting an edge that already exists is
	// a no-op.
	Create(ctx context.Context, userID, authorID bson.ObjectID) error
	Delete(ctx context.Context, userID, authorID bson.ObjectID) error
	Exists(ctx context.Context, userID, authorID bson.ObjectID) (bool, error)
	// AuthorIDs returns the distinct set of authors userID follows.
	AuthorIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error)
}

type mongoFollowRepo struct {
	col *mongo.Collection
}

func NewMongoFollowRepo(db *mongo.Database) FollowRepository {
	return &mongoFollowRepo{col: db.Collection("follows")}
}

func (r *mongoFollowRepo) Create(ctx context.Context, userID, authorID bson.ObjectID) error {
	edge := model.Follow{ID: bson.NewObjectID(), UserID: userID, AuthorID: authorID}
	_, err := r.col.InsertOne(ctx, edge)
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func (r *mongoFollowRepo) Delete(ctx context.Context, userID, authorID bson.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"user_id": userID, "author_id": authorID})
	return err
}

func (r *mongoFollowRepo) Exists(ctx context.Context, userID, authorID bson.ObjectID) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "author_id": authorID}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// AuthorIDs dedupes in code rather than relying on the unique index, so
// the feed stays correct even over legacy duplicate edges.
func (r *mongoFollowRepo) AuthorIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var edges []model.Follow
	if err := cur.All(ctx, &edges); err != nil {
		return nil, err
	}

	seen := make(map[bson.ObjectID]bool, len(edges))
	ids := make([]bson.ObjectID, 0, len(edges))
	for _, e := range edges {
		if seen[e.AuthorID] {
			continue
		}
		seen[e.AuthorID] = true
		ids = append(ids, e.AuthorID)
	}
	return ids, nil
}
