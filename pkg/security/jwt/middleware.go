package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// unauthorizedMessage is shared by every gate failure on purpose:
// the response must not reveal whether the token was missing, malformed,
// expired or forged.
const unauthorizedMessage = "invalid or missing token"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the token's email into c.Locals("userEmail").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				// Fallback: treat entire header as token (for non-standard clients)
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return unauthorized(c)
		}
		email, err := verifyEmail(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals("userEmail", email)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
}
