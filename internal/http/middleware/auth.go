package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"certtracker/internal/auth"
)

const (
	// UserIDLocalKey is where the authenticated caller's user ID is stored
	// in context locals.
	UserIDLocalKey = "user_id"
	// EmailLocalKey is where the authenticated caller's email is stored.
	EmailLocalKey = "email"
)

// Auth verifies the bearer token on every request it guards and stashes the
// caller's identity in context locals. A missing, malformed, expired, or
// tampered token is answered 401 uniformly.
func Auth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		c.Locals(EmailLocalKey, claims.Email)

		return c.Next()
	}
}

// CallerID returns the authenticated user ID set by Auth, or "" when the
// request did not pass through it.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}
