package middleware

import (
	"github.com/gofiber/fiber/v2"
)

type securityMiddleware struct{}

// NewSecurityMiddleware sets conservative browser security headers on
// every response.
func NewSecurityMiddleware() Middleware {
	return &securityMiddleware{}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		return c.Next()
	}
}
