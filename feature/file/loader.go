package file

import (
	"storage-gateway/core/audit"
	"storage-gateway/core/storage"
	"storage-gateway/feature/bucket"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new file feature on top of the bucket service.
func NewFeature(client storage.Client, buckets *bucket.Service, recorder audit.Recorder, logger *zap.Logger) *Feature {
	svc := NewService(client, buckets, logger)
	issuer := NewIssuer(client, buckets, logger)
	return &Feature{handler: NewHandler(svc, issuer, recorder, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "file"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
