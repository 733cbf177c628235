package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sitetive/forms-backend/internal/dto"
	"github.com/sitetive/forms-backend/internal/middleware"
	"github.com/sitetive/forms-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login verifies credentials, establishes a session cookie and returns a
// bearer token. Either credential is sufficient on later requests.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionUsername, user.Username)
	if err := sess.Save(); err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Username: user.Username},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			return err
		}
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// CurrentUser returns the authenticated account without the password. A
// token for a since-deleted account is treated as unauthorized.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	user, err := h.authService.User(c.UserContext(), identity.UserID)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	return c.JSON(dto.UserResponse{ID: user.ID, Username: user.Username})
}
