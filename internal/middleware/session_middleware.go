package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// tokenKey is the locals key the bearer token is stored under.
const tokenKey = "session_token"

// BearerToken extracts the bearer token from the Authorization header into
// the request locals. It never rejects the request: a missing or unknown
// token maps to a different status code on each endpoint, so the handlers
// own that decision.
func BearerToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		c.Locals(tokenKey, token)
		return c.Next()
	}
}

// TokenFromContext returns the bearer token extracted by BearerToken, or an
// empty string when none was supplied.
func TokenFromContext(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenKey).(string)
	return token
}
