package services_test

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/model"
	"blogspace/services"
)

// ---- deterministic test ids ----

func oid(n byte) bson.ObjectID {
	var id bson.ObjectID
	id[11] = n
	return id
}

func groupRef(id bson.ObjectID) *bson.ObjectID { return &id }

// ---- fixture builder ----

type fixture struct {
	users   *fakeUserRepo
	groups  *fakeGroupRepo
	posts   *fakePostRepo
	follows *fakeFollowRepo
	feed    *services.FeedService
}

func newFixture() *fixture {
	f := &fixture{
		users:   &fakeUserRepo{},
		groups:  &fakeGroupRepo{},
		posts:   &fakePostRepo{},
		follows: &fakeFollowRepo{},
	}
	f.feed = services.NewFeedService(f.posts, f.groups, f.users, f.follows)
	return f
}

func (f *fixture) addUser(id bson.ObjectID, name string) model.User {
	u := model.User{ID: id, Username: name}
	f.users.users = append(f.users.users, u)
	return u
}

func (f *fixture) addGroup(id bson.ObjectID, slug string) model.Group {
	g := model.Group{ID: id, Title: slug, Slug: slug}
	f.groups.groups = append(f.groups.groups, g)
	return g
}

func (f *fixture) addPost(id bson.ObjectID, author bson.ObjectID, group *bson.ObjectID, text string, at time.Time) model.Post {
	p := model.Post{ID: id, AuthorID: author, GroupID: group, Text: text, PubDate: at}
	f.posts.posts = append(f.posts.posts, p)
	return p
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestGlobalFeedOrdering(t *testing.T) {
	f := newFixture()
	alice := f.addUser(oid(1), "alice")

	// Inserted out of order on purpose.
	f.addPost(oid(10), alice.ID, nil, "middle", t0.Add(1*time.Minute))
	f.addPost(oid(11), alice.ID, nil, "newest", t0.Add(2*time.Minute))
	f.addPost(oid(12), alice.ID, nil, "oldest", t0)

	page, err := f.feed.GlobalFeed(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "newest", page.Items[0].Text)
	assert.Equal(t, "middle", page.Items[1].Text)
	assert.Equal(t, "oldest", page.Items[2].Text)
	assert.Equal(t, "alice", page.Items[0].Author)
}

func TestGroupFeedPagination(t *testing.T) {
	f := newFixture()
	alice := f.addUser(oid(1), "alice")
	g := f.addGroup(oid(2), "test-slug")
	other := f.addGroup(oid(3), "other")

	for i := 0; i < 12; i++ {
		f.addPost(oid(byte(20+i)), alice.ID, groupRef(g.ID), "post "+strconv.Itoa(i), t0.Add(time.Duration(i)*time.Minute))
	}
	// A post in another group must not leak in.
	f.addPost(oid(50), alice.ID, groupRef(other.ID), "elsewhere", t0.Add(time.Hour))

	group, page1, err := f.feed.GroupFeed(context.Background(), "test-slug", "1")
	require.NoError(t, err)
	assert.Equal(t, "test-slug", group.Slug)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, "post 11", page1.Items[0].Text)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 12, page1.Count)

	_, page2, err := f.feed.GroupFeed(context.Background(), "test-slug", "2")
	require.NoError(t, err)
	assert.Len(t, page2.Items, 2)
	assert.Equal(t, "post 1", page2.Items[0].Text)
	assert.Equal(t, "post 0", page2.Items[1].Text)
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	f := newFixture()
	_, _, err := f.feed.GroupFeed(context.Background(), "nonexistent-slug", "1")
	assert.ErrorIs(t, err, services.ErrGroupNotFound)
}

func TestProfileFeedEmptyAuthor(t *testing.T) {
	f := newFixture()
	f.addUser(oid(1), "auth_of_post")

	author, page, err := f.feed.ProfileFeed(context.Background(), "auth_of_post", "1")
	require.NoError(t, err)
	assert.Equal(t, "auth_of_post", author.Username)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Count)
}

func TestProfileFeedUnknownAuthor(t *testing.T) {
	f := newFixture()
	_, _, err := f.feed.ProfileFeed(context.Background(), "nobody", "1")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestProfileFeedOnlyOwnPosts(t *testing.T) {
	f := newFixture()
	alice := f.addUser(oid(1), "alice")
	bob := f.addUser(oid(2), "bob")
	f.addPost(oid(10), alice.ID, nil, "by alice", t0)
	f.addPost(oid(11), bob.ID, nil, "by bob", t0.Add(time.Minute))

	_, page, err := f.feed.ProfileFeed(context.Background(), "alice", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "by alice", page.Items[0].Text)
}

func TestFollowingFeedExclusivity(t *testing.T) {
	f := newFixture()
	viewer := f.addUser(oid(1), "viewer")
	followed := f.addUser(oid(2), "followed")
	stranger := f.addUser(oid(3), "stranger")
	g := f.addGroup(oid(4), "shared")

	// Viewer and stranger share a group; that must not matter.
	f.addPost(oid(10), followed.ID, groupRef(g.ID), "from followed", t0)
	f.addPost(oid(11), stranger.ID, groupRef(g.ID), "from stranger", t0.Add(time.Minute))

	f.follows.edges = append(f.follows.edges, model.Follow{UserID: viewer.ID, AuthorID: followed.ID})

	page, err := f.feed.FollowingFeed(context.Background(), viewer.ID, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "from followed", page.Items[0].Text)
}

func TestFollowingFeedDuplicateEdges(t *testing.T) {
	f := newFixture()
	viewer := f.addUser(oid(1), "viewer")
	author := f.addUser(oid(2), "author")
	f.addPost(oid(10), author.ID, nil, "once only", t0)

	// Two identical edges; the post must still appear exactly once.
	f.follows.edges = append(f.follows.edges,
		model.Follow{UserID: viewer.ID, AuthorID: author.ID},
		model.Follow{UserID: viewer.ID, AuthorID: author.ID},
	)

	page, err := f.feed.FollowingFeed(context.Background(), viewer.ID, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "once only", page.Items[0].Text)
}

func TestFollowingFeedEmptyWithoutFollows(t *testing.T) {
	f := newFixture()
	viewer := f.addUser(oid(1), "viewer")
	author := f.addUser(oid(2), "author")
	f.addPost(oid(10), author.ID, nil, "unseen", t0)

	page, err := f.feed.FollowingFeed(context.Background(), viewer.ID, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Count)
}

func TestFeedResolvesGroupReference(t *testing.T) {
	f := newFixture()
	alice := f.addUser(oid(1), "alice")
	g := f.addGroup(oid(2), "cooking")
	f.addPost(oid(10), alice.ID, groupRef(g.ID), "with group", t0)
	f.addPost(oid(11), alice.ID, nil, "without group", t0.Add(time.Minute))

	page, err := f.feed.GlobalFeed(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Nil(t, page.Items[0].Group)
	require.NotNil(t, page.Items[1].Group)
	assert.Equal(t, "cooking", page.Items[1].Group.Slug)
}

// sortPosts mirrors the repository ordering: pub_date desc, id desc.
func sortPosts(posts []model.Post) []model.Post {
	out := make([]model.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out
}
