package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/internal/repository"
	"blogspace/model"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// FollowService owns the follow edge set: the write counterpart to the
// following feed.
type FollowService struct {
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewFollowService(users repository.UserRepository, follows repository.FollowRepository) *FollowService {
	return &FollowService{users: users, follows: follows}
}

func (s *FollowService) resolve(ctx context.Context, authorName string) (model.User, error) {
	author, err := s.users.ByUsername(ctx, authorName)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	return author, err
}

// Follow records that viewer wants authorName's posts in their feed.
// Following an author twice is a no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, viewerID bson.ObjectID, authorName string) error {
	author, err := s.resolve(ctx, authorName)
	if err != nil {
		return err
	}
	if author.ID == viewerID {
		return ErrSelfFollow
	}
	return s.follows.Create(ctx, viewerID, author.ID)
}

// Unfollow removes the edge; removing an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, viewerID bson.ObjectID, authorName string) error {
	author, err := s.resolve(ctx, authorName)
	if err != nil {
		return err
	}
	return s.follows.Delete(ctx, viewerID, author.ID)
}

func (s *FollowService) IsFollowing(ctx context.Context, viewerID bson.ObjectID, authorName string) (bool, error) {
	author, err := s.resolve(ctx, authorName)
	if err != nil {
		return false, err
	}
	return s.follows.Exists(ctx, viewerID, author.ID)
}
