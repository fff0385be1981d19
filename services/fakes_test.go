package services_test

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/internal/repository"
	"blogspace/model"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// observable behavior: feed ordering, $in membership semantics, and the
// not-found sentinels.

type fakePostRepo struct {
	posts []model.Post
}

func (f *fakePostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	return sortPosts(f.posts), nil
}

func (f *fakePostRepo) ListByGroup(ctx context.Context, groupID bson.ObjectID) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.GroupID != nil && *p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return sortPosts(out), nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID bson.ObjectID) ([]model.Post, error) {
	var out []model.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return sortPosts(out), nil
}

func (f *fakePostRepo) ListByAuthors(ctx context.Context, authorIDs []bson.ObjectID) ([]model.Post, error) {
	member := make(map[bson.ObjectID]bool, len(authorIDs))
	for _, id := range authorIDs {
		member[id] = true
	}
	var out []model.Post
	for _, p := range f.posts {
		if member[p.AuthorID] {
			out = append(out, p)
		}
	}
	return sortPosts(out), nil
}

func (f *fakePostRepo) ByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, repository.ErrNotFound
}

func (f *fakePostRepo) Create(ctx context.Context, p *model.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	f.posts = append(f.posts, *p)
	return nil
}

func (f *fakePostRepo) Update(ctx context.Context, p model.Post) error {
	for i := range f.posts {
		if f.posts[i].ID == p.ID {
			p.PubDate = f.posts[i].PubDate
			f.posts[i] = p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakePostRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGroupRepo struct {
	groups []model.Group
}

func (f *fakeGroupRepo) BySlug(ctx context.Context, slug string) (model.Group, error) {
	for _, g := range f.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return model.Group{}, repository.ErrNotFound
}

func (f *fakeGroupRepo) ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Group, error) {
	out := make(map[bson.ObjectID]model.Group)
	for _, g := range f.groups {
		for _, id := range ids {
			if g.ID == id {
				out[g.ID] = g
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) List(ctx context.Context) ([]model.Group, error) {
	return f.groups, nil
}

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) ByUsername(ctx context.Context, username string) (model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeUserRepo) ByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeUserRepo) ByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	out := make(map[bson.ObjectID]model.User)
	for _, u := range f.users {
		for _, id := range ids {
			if u.ID == id {
				out[u.ID] = u
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	f.users = append(f.users, *u)
	return nil
}

type fakeFollowRepo struct {
	edges []model.Follow
}

func (f *fakeFollowRepo) Create(ctx context.Context, userID, authorID bson.ObjectID) error {
	for _, e := range f.edges {
		if e.UserID == userID && e.AuthorID == authorID {
			return nil
		}
	}
	f.edges = append(f.edges, model.Follow{UserID: userID, AuthorID: authorID})
	return nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, userID, authorID bson.ObjectID) error {
	var kept []model.Follow
	for _, e := range f.edges {
		if e.UserID == userID && e.AuthorID == authorID {
			continue
		}
		kept = append(kept, e)
	}
	f.edges = kept
	return nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, userID, authorID bson.ObjectID) (bool, error) {
	for _, e := range f.edges {
		if e.UserID == userID && e.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

// AuthorIDs deliberately returns raw edges, duplicates included, so tests
// exercise the feed's duplicate tolerance.
func (f *fakeFollowRepo) AuthorIDs(ctx context.Context, userID bson.ObjectID) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	for _, e := range f.edges {
		if e.UserID == userID {
			ids = append(ids, e.AuthorID)
		}
	}
	return ids, nil
}
