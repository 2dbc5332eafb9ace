package hub

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cache   *Cache
	handler *Handler
}

// NewFeature creates a new hub feature serving datasets from cache.
func NewFeature(cache *Cache, logger *zap.Logger) *Feature {
	return &Feature{cache: cache, handler: NewHandler(cache, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "hub"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cache != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
