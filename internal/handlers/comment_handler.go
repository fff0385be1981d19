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

type CommentHandler struct {
	Comments repository.CommentRepository
	Posts    repository.PostRepository
	Users    repository.UserRepository
}

// commentViews resolves comment authors in one batched lookup.
func commentViews(ctx context.Context, users repository.UserRepository, comments []model.Comment) ([]dto.CommentResponse, error) {
	var authorIDs []bson.ObjectID
	seen := make(map[bson.ObjectID]bool)
	for _, cm := range comments {
		if !seen[cm.AuthorID] {
			seen[cm.AuthorID] = true
			authorIDs = append(authorIDs, cm.AuthorID)
		}
	}
	authors, err := users.ByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.CommentResponse{
			ID:      cm.ID.Hex(),
			Author:  authors[cm.AuthorID].Username,
			Text:    cm.Text,
			PubDate: cm.PubDate,
		})
	}
	return out, nil
}

// Create godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Post ID (hex)"
// @Param        data  body      dto.CreateCommentReq  true  "Comment payload"
// @Success      201   {object}  dto.CommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}

	if _, err := h.Posts.ByID(c.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return err
	}

	comment := model.Comment{
		PostID:   postID,
		AuthorID: uid,
		Text:     body.Text,
		PubDate:  time.Now().UTC(),
	}
	if err := h.Comments.Create(c.Context(), &comment); err != nil {
		return err
	}

	views, err := commentViews(c.Context(), h.Users, []model.Comment{comment})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(views[0])
}

// List godoc
// @Summary      List a post's comments, newest first
// @Tags         comments
// @Produce      json
// @Param        id     path      string  true   "Post ID (hex)"
// @Param        limit  query     int     false  "Max comments to return"
// @Success      200    {object}  dto.ListCommentsResp
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id")
	}

	limit := int64(c.QueryInt("limit", configs.DefaultLimitComments))
	if limit <= 0 {
		limit = configs.DefaultLimitComments
	}
	if limit > configs.MaxLimitComments {
		limit = configs.MaxLimitComments
	}

	if _, err := h.Posts.ByID(c.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "post not found")
		}
		return err
	}

	comments, err := h.Comments.ListByPost(c.Context(), postID, limit)
	if err != nil {
		return err
	}
	views, err := commentViews(c.Context(), h.Users, comments)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListCommentsResp{Comments: views})
}
