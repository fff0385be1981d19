package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"blogspace/dto"
	"blogspace/internal/repository"
	"blogspace/model"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	Users  repository.UserRepository
	Secret string
}

func (h *AuthHandler) issueToken(u model.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Secret))
}

// Signup godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.SignupRequest  true  "Credentials"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username is required")
	}
	if len(body.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username:     body.Username,
		PasswordHash: hash,
		Joined:       time.Now().UTC(),
	}
	if err := h.Users.Create(c.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fiber.NewError(fiber.StatusConflict, "username already taken")
		}
		return err
	}

	token, err := h.issueToken(user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: token, Username: user.Username})
}

// Login godoc
// @Summary      Exchange credentials for a token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	user, err := h.Users.ByUsername(c.Context(), body.Username)
	if errors.Is(err, repository.ErrNotFound) {
		// Same answer as a bad password; do not leak which part failed.
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(body.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.issueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token, Username: user.Username})
}
