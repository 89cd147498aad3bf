package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/supplychain-service/internal/api/dto"
	"github.com/spec-kit/supplychain-service/internal/auth"
	"github.com/spec-kit/supplychain-service/internal/service"
)

// AuthHandler exposes the credential exchange and account endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Token handles POST /token. The exchange consumes form-encoded username and
// password fields, mirroring the OAuth2 password flow.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	_, token, _, err := h.auth.Login(c.Context(), username, password)
	if err != nil {
		return fiber.NewError(http.StatusUnauthorized, "Incorrect username or password")
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(dto.NewUserResponse(user))
}

// CreateUser handles POST /users/.
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, err := h.auth.RegisterUser(c.Context(), req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// ListUsers handles GET /users/.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context(), c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponses(users))
}
