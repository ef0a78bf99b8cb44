// Package reqctx gives every request a cancelable context derived from the
// server's base context.
package reqctx

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
)

type localsKey int

const (
	cancelKey localsKey = iota
	detachedKey
)

// New returns a middleware that sets c.UserContext() to a child of base.
// The child is canceled when the handler chain returns, or when base is
// canceled. Responses sent through SendStream keep it alive until the body
// has been written.
func New(base context.Context) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(base)
		c.SetUserContext(ctx)
		c.Locals(cancelKey, cancel)

		err := c.Next()
		if detached, _ := c.Locals(detachedKey).(bool); !detached {
			cancel()
		}
		return err
	}
}

// SendStream sets body as the response stream. fasthttp reads it after the
// handler chain has returned, so the request context is released only when
// the stream is closed.
func SendStream(c *fiber.Ctx, body io.ReadCloser, size int) error {
	cancel, ok := c.Locals(cancelKey).(context.CancelFunc)
	if !ok {
		return c.SendStream(body, size)
	}
	c.Locals(detachedKey, true)
	return c.SendStream(&releasingReader{ReadCloser: body, release: cancel}, size)
}

type releasingReader struct {
	io.ReadCloser
	release context.CancelFunc
}

func (r *releasingReader) Close() error {
	err := r.ReadCloser.Close()
	r.release()
	return err
}
