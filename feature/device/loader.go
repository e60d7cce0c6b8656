package device

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the device emulation feature.
func NewFeature(logger *zap.Logger, location *time.Location, opts ...Option) *Feature {
	svc := NewService(logger, location, opts...)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "device"
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
