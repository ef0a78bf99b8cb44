package bucket

import (
	"storage-gateway/core/audit"
	"storage-gateway/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new bucket feature.
func NewFeature(client storage.Client, recorder audit.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(client, logger)
	return &Feature{service: svc, handler: NewHandler(svc, recorder, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "bucket"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Service exposes the bucket service to features that depend on it.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
