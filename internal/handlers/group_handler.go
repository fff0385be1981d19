package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blogspace/dto"
	"blogspace/internal/repository"
)

type GroupHandler struct {
	Groups repository.GroupRepository
}

// List godoc
// @Summary      List all groups
// @Tags         groups
// @Produce      json
// @Success      200  {array}  dto.GroupResponse
// @Router       /groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.Groups.List(c.Context())
	if err != nil {
		return err
	}
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{Title: g.Title, Slug: g.Slug, Description: g.Description})
	}
	return c.JSON(out)
}
