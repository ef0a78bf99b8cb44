package health

import (
	"storage-gateway/core/response"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for health probes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/alive", h.HandleAlive)
	app.Get("/health", h.HandleHealth)
}

// HandleAlive reports that the process is serving requests.
// @Summary Liveness
// @Tags health
// @Produce json
// @Success 200 {object} response.Envelope[any]
// @Router /alive [get]
func (h *Handler) HandleAlive(c *fiber.Ctx) error {
	return c.JSON(response.OkWithoutData("alive"))
}

// HandleHealth probes the dependencies.
// @Summary Readiness
// @Description Probes the storage backend and the audit database when configured.
// @Tags health
// @Produce json
// @Success 200 {object} response.Envelope[Report]
// @Failure 503 {object} response.Envelope[Report]
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.Check(c.UserContext())
	if !report.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(response.Fail(report, "unhealthy", fiber.StatusServiceUnavailable))
	}
	return c.JSON(response.Ok(report, "healthy"))
}
