package homepage

import (
	"io/fs"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	pages   *Pages
	handler *Handler
}

// NewFeature creates the landing page feature. Rendering happens once here.
func NewFeature() (*Feature, error) {
	pages, err := RenderPages()
	if err != nil {
		return nil, err
	}
	icon, err := fs.ReadFile(Static(), "favicon.ico")
	if err != nil {
		return nil, err
	}
	return &Feature{pages: pages, handler: NewHandler(pages, icon)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "homepage"
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
