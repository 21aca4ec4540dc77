package common

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP resolves the remote client address, preferring the usual
// proxy headers over the socket peer.
func ClientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if rip := c.Get("X-Real-IP"); rip != "" {
		return rip
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
