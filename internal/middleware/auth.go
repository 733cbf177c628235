package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sitetive/forms-backend/internal/config"
	"github.com/sitetive/forms-backend/internal/dto"
)

const identityKey = "identity"

// Identity is the authenticated account a credential resolved to. Handlers
// only ever see this type, never the credential itself.
type Identity struct {
	UserID   uint
	Username string
}

// SessionKeys used by the login handler and the session leg of Protected.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
)

func NewSessionStore(cfg *config.Config) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.SessionExpiry,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Env == "production",
		CookieSameSite: "Lax",
	})
}

// Protected authorizes a request when either credential verifies: a Bearer
// token in the Authorization header, or the server-side session established
// at login. Both legs resolve to the same Identity in context locals;
// neither succeeding yields 401.
func Protected(store *session.Store, cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			id, ok := identityFromToken(c)
			if !ok {
				return unauthorized(c)
			}
			c.Locals(identityKey, id)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			id, ok := identityFromSession(store, c)
			if !ok {
				return unauthorized(c)
			}
			c.Locals(identityKey, id)
			return c.Next()
		},
	})
}

// IdentityFrom extracts the authenticated identity set by Protected.
func IdentityFrom(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}

func identityFromToken(c *fiber.Ctx) (Identity, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Identity{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return Identity{}, false
	}
	username, _ := claims["username"].(string)
	return Identity{UserID: uint(id), Username: username}, true
}

func identityFromSession(store *session.Store, c *fiber.Ctx) (Identity, bool) {
	sess, err := store.Get(c)
	if err != nil {
		return Identity{}, false
	}
	id, ok := sess.Get(SessionUserID).(uint)
	if !ok {
		return Identity{}, false
	}
	username, _ := sess.Get(SessionUsername).(string)
	return Identity{UserID: id, Username: username}, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized",
	})
}
