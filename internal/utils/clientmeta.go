package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Unknown is stored when a client attribute cannot be determined.
const Unknown = "unknown"

// ClientIP returns the first X-Forwarded-For entry, then X-Real-IP, then
// Unknown. The socket address is ignored: the site runs behind a proxy.
func ClientIP(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if real := strings.TrimSpace(c.Get("X-Real-IP")); real != "" {
		return real
	}
	return Unknown
}

// UserAgent returns the User-Agent header or Unknown.
func UserAgent(c *fiber.Ctx) string {
	if ua := strings.TrimSpace(c.Get(fiber.HeaderUserAgent)); ua != "" {
		return ua
	}
	return Unknown
}
