package activity

import (
	"storage-gateway/core/apperr"
	"storage-gateway/core/audit"
	"storage-gateway/core/response"
	"storage-gateway/core/utils"

	"github.com/gofiber/fiber/v2"
)

// MaxLimit caps the number of events returned by one request.
const MaxLimit = 500

// EventList lists audit events.
type EventList struct {
	Events []audit.Event `json:"events"`
}

// Handler serves the recorded audit trail.
type Handler struct {
	recorder audit.Recorder
}

// NewHandler creates a new HTTP handler.
func NewHandler(recorder audit.Recorder) *Handler {
	return &Handler{recorder: recorder}
}

// RegisterRoutes registers the activity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/activity", h.HandleRecent)
}

// HandleRecent lists the most recent mutations.
// @Summary Recent Activity
// @Description Lists recorded bucket and file mutations, newest first.
// @Tags activity
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum number of events" default(50)
// @Success 200 {object} response.Envelope[EventList]
// @Failure 400 {object} response.Envelope[response.ProblemDetails]
// @Router /api/activity [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	limit, err := utils.QueryInt(c, "limit", 50)
	if err != nil {
		return err
	}
	if limit <= 0 || limit > MaxLimit {
		return apperr.Validationf("limit must be between 1 and %d", MaxLimit)
	}

	events, err := h.recorder.Recent(c.UserContext(), limit)
	if err != nil {
		return err
	}
	if events == nil {
		events = []audit.Event{}
	}
	return c.JSON(response.Ok(EventList{Events: events}, "ok"))
}
