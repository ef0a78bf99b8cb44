// Package errorhandler turns handler errors into problem responses.
package errorhandler

import (
	"strconv"

	"storage-gateway/core/apperr"
	"storage-gateway/core/logger"
	"storage-gateway/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FailureMessage is the envelope message of every failed request.
const FailureMessage = "request failed"

// Config configures the handler.
type Config struct {
	// Development exposes raw error text and stack traces to clients.
	Development bool
	// Logger receives one entry per failed request.
	Logger *zap.Logger
}

// New returns a fiber.ErrorHandler writing a Fail envelope around a
// ProblemDetails built from the returned error.
func New(cfg Config) fiber.ErrorHandler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		traceID := logger.RayID(c)
		if traceID == "" {
			traceID = strconv.FormatUint(c.Context().ID(), 10)
		}

		p := response.NewProblem(err, response.ProblemOptions{
			Instance:    c.Path(),
			TraceID:     traceID,
			Development: cfg.Development,
		})

		l := logger.WithRayID(log, c).With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", p.Status),
			zap.String("kind", apperr.Classify(err).Kind.String()),
			zap.Error(err),
		)
		if p.Status >= fiber.StatusInternalServerError {
			l.Error("Request failed")
		} else {
			l.Warn("Request rejected")
		}

		return c.Status(p.Status).JSON(response.Fail(p, FailureMessage, p.Status), response.ProblemContentType)
	}
}
