package activity

import (
	"storage-gateway/core/audit"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the activity feature. It is only enabled when the
// audit trail is persisted.
func NewFeature(recorder audit.Recorder, enabled bool) *Feature {
	return &Feature{handler: NewHandler(recorder), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "activity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
