// Package rayid assigns a correlation id to every request.
package rayid

import (
	"storage-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-ID"

// maxInboundLength bounds client-supplied ids.
const maxInboundLength = 64

// New returns a middleware storing the ray id in c.Locals(logger.RayIDKey).
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" || len(rid) > maxInboundLength {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
