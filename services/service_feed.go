// Package services holds the read and write logic between the HTTP
// handlers and the repositories.
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/configs"
	"blogspace/dto"
	"blogspace/internal/pagination"
	"blogspace/internal/repository"
	"blogspace/model"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)

// FeedService produces the ordered, paginated post listing for each
// viewing context. All of its methods are read-only.
type FeedService struct {
	posts   repository.PostRepository
	groups  repository.GroupRepository
	users   repository.UserRepository
	follows repository.FollowRepository
}

func NewFeedService(
	posts repository.PostRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	follows repository.FollowRepository,
) *FeedService {
	return &FeedService{posts: posts, groups: groups, users: users, follows: follows}
}

// GlobalFeed is every post, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context, rawPage string) (pagination.Page[dto.PostResponse], error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return pagination.Page[dto.PostResponse]{}, err
	}
	return s.page(ctx, posts, rawPage)
}

// GroupFeed is every post filed under the group with the given slug.
func (s *FeedService) GroupFeed(ctx context.Context, slug, rawPage string) (model.Group, pagination.Page[dto.PostResponse], error) {
	group, err := s.groups.BySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Group{}, pagination.Page[dto.PostResponse]{}, ErrGroupNotFound
	}
	if err != nil {
		return model.Group{}, pagination.Page[dto.PostResponse]{}, err
	}

	posts, err := s.posts.ListByGroup(ctx, group.ID)
	if err != nil {
		return model.Group{}, pagination.Page[dto.PostResponse]{}, err
	}
	page, err := s.page(ctx, posts, rawPage)
	return group, page, err
}

// ProfileFeed is every post by the named author. An author with no posts
// yields an empty page, not an error.
func (s *FeedService) ProfileFeed(ctx context.Context, username, rawPage string) (model.User, pagination.Page[dto.PostResponse], error) {
	author, err := s.users.ByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, pagination.Page[dto.PostResponse]{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, pagination.Page[dto.PostResponse]{}, err
	}

	posts, err := s.posts.ListByAuthor(ctx, author.ID)
	if err != nil {
		return model.User{}, pagination.Page[dto.PostResponse]{}, err
	}
	page, err := s.page(ctx, posts, rawPage)
	return author, page, err
}

// FollowingFeed is every post whose author the viewer follows. The author
// set is deduplicated first, so duplicate follow edges can never surface a
// post twice.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID bson.ObjectID, rawPage string) (pagination.Page[dto.PostResponse], error) {
	authorIDs, err := s.follows.AuthorIDs(ctx, viewerID)
	if err != nil {
		return pagination.Page[dto.PostResponse]{}, err
	}
	posts, err := s.posts.ListByAuthors(ctx, authorIDs)
	if err != nil {
		return pagination.Page[dto.PostResponse]{}, err
	}
	return s.page(ctx, posts, rawPage)
}

func (s *FeedService) page(ctx context.Context, posts []model.Post, rawPage string) (pagination.Page[dto.PostResponse], error) {
	pg := pagination.Paginate(posts, configs.PageSize, rawPage)
	views, err := s.render(ctx, pg.Items)
	if err != nil {
		return pagination.Page[dto.PostResponse]{}, err
	}
	return pagination.Page[dto.PostResponse]{
		Items:      views,
		Number:     pg.Number,
		TotalPages: pg.TotalPages,
		Count:      pg.Count,
	}, nil
}

// render resolves author and group references for one page of posts. Only
// the page's items are resolved, so lookups stay bounded by the page size.
func (s *FeedService) render(ctx context.Context, posts []model.Post) ([]dto.PostResponse, error) {
	var authorIDs, groupIDs []bson.ObjectID
	seenAuthors := make(map[bson.ObjectID]bool)
	seenGroups := make(map[bson.ObjectID]bool)
	for _, p := range posts {
		if !seenAuthors[p.AuthorID] {
			seenAuthors[p.AuthorID] = true
			authorIDs = append(authorIDs, p.AuthorID)
		}
		if p.GroupID != nil && !seenGroups[*p.GroupID] {
			seenGroups[*p.GroupID] = true
			groupIDs = append(groupIDs, *p.GroupID)
		}
	}

	authors, err := s.users.ByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	groups, err := s.groups.ByIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PostResponse, 0, len(posts))
	for _, p := range posts {
		v := dto.PostResponse{
			ID:      p.ID.Hex(),
			Author:  authors[p.AuthorID].Username,
			Text:    p.Text,
			Image:   p.Image,
			PubDate: p.PubDate,
		}
		if p.GroupID != nil {
			if g, ok := groups[*p.GroupID]; ok {
				v.Group = &dto.GroupResponse{Title: g.Title, Slug: g.Slug, Description: g.Description}
			}
		}
		out = append(out, v)
	}
	return out, nil
}
