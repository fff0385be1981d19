package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogspace/internal/authctx"
	"blogspace/services"
)

// FollowManager is the slice of FollowService the follow handlers consume.
type FollowManager interface {
	Follow(ctx context.Context, viewerID bson.ObjectID, authorName string) error
	Unfollow(ctx context.Context, viewerID bson.ObjectID, authorName string) error
}

type FollowHandler struct {
	Follows FollowManager
}

// Follow godoc
// @Summary      Follow an author
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "Author username"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /profiles/{username}/follow [post]
func (h *FollowHandler) Follow(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	err := h.Follows.Follow(c.Context(), uid, c.Params("username"))
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.NewError(fiber.StatusNotFound, "author not found")
	case errors.Is(err, services.ErrSelfFollow):
		return fiber.NewError(fiber.StatusBadRequest, "cannot follow yourself")
	case err != nil:
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unfollow godoc
// @Summary      Unfollow an author
// @Tags         follows
// @Security     BearerAuth
// @Param        username  path  string  true  "Author username"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /profiles/{username}/follow [delete]
func (h *FollowHandler) Unfollow(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	err := h.Follows.Unfollow(c.Context(), uid, c.Params("username"))
	if errors.Is(err, services.ErrUserNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "author not found")
	}
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
