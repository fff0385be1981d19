package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/dto"
	"blogspace/internal/authctx"
	"blogspace/internal/feedcache"
	"blogspace/internal/pagination"
	"blogspace/model"
	"blogspace/services"
)

// FeedLister is the slice of FeedService the feed handlers consume.
type FeedLister interface {
	GlobalFeed(ctx context.Context, rawPage string) (pagination.Page[dto.PostResponse], error)
	GroupFeed(ctx context.Context, slug, rawPage string) (model.Group, pagination.Page[dto.PostResponse], error)
	ProfileFeed(ctx context.Context, username, rawPage string) (model.User, pagination.Page[dto.PostResponse], error)
	FollowingFeed(ctx context.Context, viewerID bson.ObjectID, rawPage string) (pagination.Page[dto.PostResponse], error)
}

// FollowChecker decides whether the profile page shows a follow or an
// unfollow control.
type FollowChecker interface {
	IsFollowing(ctx context.Context, viewerID bson.ObjectID, authorName string) (bool, error)
}

type FeedHandler struct {
	Feeds   FeedLister
	Follows FollowChecker
	Cache   *feedcache.Cache
}

func indexKey(page int) string { return "index:" + strconv.Itoa(page) }

func feedResponse(p pagination.Page[dto.PostResponse]) dto.FeedResponse {
	posts := p.Items
	if posts == nil {
		posts = []dto.PostResponse{}
	}
	return dto.FeedResponse{
		Posts:      posts,
		Page:       p.Number,
		TotalPages: p.TotalPages,
		Count:      p.Count,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
	}
}

// Index godoc
// @Summary      Global feed
// @Description  Every post, newest first. Cached per page for a short TTL.
// @Tags         feeds
// @Produce      json
// @Param        page  query     string  false  "Page number"
// @Success      200   {object}  dto.FeedResponse
// @Router       /feed [get]
func (h *FeedHandler) Index(c *fiber.Ctx) error {
	if body, ok := h.Cache.Get(indexKey(pagination.PageNumber(c.Query("page")))); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	page, err := h.Feeds.GlobalFeed(c.Context(), c.Query("page"))
	if err != nil {
		return err
	}
	body, err := json.Marshal(feedResponse(page))
	if err != nil {
		return err
	}
	// Stored under the clamped page number, not the requested one, so a
	// client walking arbitrary page values cannot grow the cache past the
	// real page count.
	h.Cache.Set(indexKey(page.Number), body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// Group godoc
// @Summary      Group feed
// @Tags         feeds
// @Produce      json
// @Param        slug  path      string  true   "Group slug"
// @Param        page  query     string  false  "Page number"
// @Success      200   {object}  dto.GroupFeedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /groups/{slug} [get]
func (h *FeedHandler) Group(c *fiber.Ctx) error {
	group, page, err := h.Feeds.GroupFeed(c.Context(), c.Params("slug"), c.Query("page"))
	if errors.Is(err, services.ErrGroupNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "group not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.GroupFeedResponse{
		Group:        dto.GroupResponse{Title: group.Title, Slug: group.Slug, Description: group.Description},
		FeedResponse: feedResponse(page),
	})
}

// Profile godoc
// @Summary      Author profile feed
// @Tags         feeds
// @Produce      json
// @Param        username  path      string  true   "Author username"
// @Param        page      query     string  false  "Page number"
// @Success      200       {object}  dto.ProfileResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /profiles/{username} [get]
func (h *FeedHandler) Profile(c *fiber.Ctx) error {
	author, page, err := h.Feeds.ProfileFeed(c.Context(), c.Params("username"), c.Query("page"))
	if errors.Is(err, services.ErrUserNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "author not found")
	}
	if err != nil {
		return err
	}

	resp := dto.ProfileResponse{
		Username:     author.Username,
		PostCount:    page.Count,
		FeedResponse: feedResponse(page),
	}
	if uid, ok := authctx.UserIDFrom(c); ok {
		following, err := h.Follows.IsFollowing(c.Context(), uid, author.Username)
		if err != nil {
			return err
		}
		resp.Following = &following
	}
	return c.JSON(resp)
}

// Following godoc
// @Summary      Personalized feed of followed authors
// @Tags         feeds
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     string  false  "Page number"
// @Success      200   {object}  dto.FeedResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /feed/following [get]
func (h *FeedHandler) Following(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	page, err := h.Feeds.FollowingFeed(c.Context(), uid, c.Query("page"))
	if err != nil {
		return err
	}
	return c.JSON(feedResponse(page))
}
