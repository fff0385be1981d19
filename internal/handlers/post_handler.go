package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/configs"
	"blogspace/dto"
	"blogspace/internal/authctx"
	"blogspace/internal/repository"
	"blogspace/model"
)

type PostHandler struct {
	Posts    repository.PostRepository
	Groups   repository.GroupRepository
	Users    repository.UserRepository
	Comments repository.CommentRepository
}

// resolveGroup maps an optional slug from the request body to a group id.
// An unknown slug is a client error, not a 404: the route resource is the
// post, not the group.
func (h *PostHandler) resolveGroup(ctx context.Context, slug string) (*bson.ObjectID, error) {
	if slug == "" {
		return nil, nil
	}
	g, err := h.Groups.BySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown group")
	}
	if err != nil {
		return nil, err
	}
	return &g.ID, nil
}

func (h *PostHandler) postView(ctx context.Context, p model.Post) (dto.PostResponse, error) {
	v := dto.PostResponse{
		ID:      p.ID.Hex(),
		Text:    p.Text,
		Image:   p.Image,
		PubDate: p.PubDate,
	}
	author, err := h.Users.ByID(ctx, p.AuthorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return dto.PostResponse{}, err
	}
	v.Author = author.Username
	if p.GroupID != nil {
		groups, err := h.Groups.ByIDs(ctx, []bson.ObjectID{*p.GroupID})
		if err != nil {
			return dto.PostResponse{}, err
		}
		if g, ok := groups[*p.GroupID]; ok {
			v.Group = &dto.GroupResponse{Title: g.Title, Slug: g.Slug, Description: g.Description}
		}
	}
	return v, nil
}

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body dto.CreatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	groupID, err := h.resolveGroup(c.Context(), body.Group)
	if err != nil {
		return err
	}

	post := model.Post{
		AuthorID: uid,
		GroupID:  groupID,
		Text:     body.Text,
		Image:    body.Image,
		PubDate:  time.Now().UTC(),
	}
	if err := h.Posts.Create(c.Context(), &post); err != nil {
		return err
	}

	view, err := h.postView(c.Context(), post)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// Detail godoc
// @Summary      Post detail with comments
// @Tags         posts
// @Produce      json
// @Param        id  path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.PostDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Detail(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	post, err := h.Posts.ByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if err != nil {
		return err
	}

	view, err := h.postView(ctx, post)
	if err != nil {
		return err
	}

	comments, err := h.Comments.ListByPost(ctx, post.ID, configs.MaxLimitComments)
	if err != nil {
		return err
	}
	cviews, err := commentViews(ctx, h.Users, comments)
	if err != nil {
		return err
	}

	return c.JSON(dto.PostDetailResponse{PostResponse: view, Comments: cviews})
}

// Update godoc
// @Summary      Edit a post (author only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID (hex)"
// @Param        data  body      dto.UpdatePostDTO  true  "New content"
// @Success      200   {object}  dto.PostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.ByID(c.Context(), postID)
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if err != nil {
		return err
	}
	if post.AuthorID != uid {
		return fiber.NewError(fiber.StatusForbidden, "not the author")
	}

	var body dto.UpdatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	groupID, err := h.resolveGroup(c.Context(), body.Group)
	if err != nil {
		return err
	}

	// pub_date stays as created; only content fields move.
	post.Text = body.Text
	post.GroupID = groupID
	post.Image = body.Image
	if err := h.Posts.Update(c.Context(), post); err != nil {
		return err
	}

	view, err := h.postView(c.Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Delete godoc
// @Summary      Delete a post and its comments (author only)
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex)"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.ByID(c.Context(), postID)
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	if err != nil {
		return err
	}
	if post.AuthorID != uid {
		return fiber.NewError(fiber.StatusForbidden, "not the author")
	}

	// Comments go first: if the second write fails the post survives with
	// fewer comments, instead of deleted-post comments lingering with no
	// path left to remove them.
	if err := h.Comments.DeleteByPost(c.Context(), post.ID); err != nil {
		return err
	}
	if err := h.Posts.Delete(c.Context(), post.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
