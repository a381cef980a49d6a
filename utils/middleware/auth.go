package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/univault/univault-api/utils/auth"
	"github.com/univault/univault-api/utils/response"
)

// AuthMiddleware is the access gate: it resolves a caller identity from a
// bearer token and blocks unauthenticated calls before any handler runs.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Required is middleware that requires a valid bearer token.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid authorization format")
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		c.Locals("user_id", claims.Identity())
		c.Locals("user_email", claims.Email)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// Optional is middleware that resolves an identity when a valid token is
// present but lets every request through.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", claims.Identity())
		c.Locals("user_email", claims.Email)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// GetIdentity returns the authenticated caller's identity from the request
// context, if any.
func GetIdentity(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("user_id").(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
