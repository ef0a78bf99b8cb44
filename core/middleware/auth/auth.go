// Package auth protects the API with a static API key.
package auth

import (
	"crypto/subtle"

	"storage-gateway/core/apperr"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
}

// New returns a middleware rejecting requests whose X-API-Key header does
// not match cfg.ApiKey.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}
		provided := c.Get(Header)
		if provided == "" {
			return apperr.Unauthorized("missing API key")
		}
		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			return apperr.Unauthorized("invalid API key")
		}
		return c.Next()
	}
}
