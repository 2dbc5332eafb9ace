package hub

import (
	"tvgu-data-hub/core/logger"
	"tvgu-data-hub/feature/hub/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the aggregated dataset.
type Handler struct {
	cache  *Cache
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(cache *Cache, logger *zap.Logger) *Handler {
	return &Handler{cache: cache, logger: logger}
}

// RegisterRoutes registers the hub routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hub")
	group.Get("/", h.HandleDataset)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/:collection", h.HandleCollection)
}

// HandleDataset returns the full dataset.
// @Summary Get Dataset
// @Description Returns every aggregated collection. The dataset is built on first access and cached.
// @Tags hub
// @Produce json
// @Success 200 {object} models.Dataset "Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hub [get]
func (h *Handler) HandleDataset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	d, err := h.cache.Get(c.Context())
	if err != nil {
		l.Error("Failed to build dataset", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(d)
}

// HandleCollection returns a single collection.
// @Summary Get Collection
// @Description Returns one aggregated collection by name.
// @Tags hub
// @Produce json
// @Param collection path string true "Collection name" Enums(departments, structs, teachers, places, subjects, groups, lessons)
// @Success 200 {array} object "Collection"
// @Failure 404 {object} map[string]string "Unknown collection"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hub/{collection} [get]
func (h *Handler) HandleCollection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("collection")

	d, err := h.cache.Get(c.Context())
	if err != nil {
		l.Error("Failed to build dataset", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	collection, ok := d.Collection(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":       "unknown collection",
			"collection":  name,
			"collections": models.Collections,
		})
	}
	return c.JSON(collection)
}

// HandleRefresh rebuilds the dataset.
// @Summary Refresh Dataset
// @Description Drops the cached dataset and rebuilds it from the sources.
// @Tags hub
// @Produce json
// @Success 200 {object} map[string]interface{} "Refresh summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /hub/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Refreshing dataset")

	d, err := h.cache.Refresh(c.Context())
	if err != nil {
		l.Error("Dataset refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":      "refreshed",
		"departments": len(d.Departments),
		"structs":     len(d.Structs),
		"teachers":    len(d.Teachers),
		"places":      len(d.Places),
		"subjects":    len(d.Subjects),
		"groups":      len(d.Groups),
		"lessons":     len(d.Lessons),
	})
}
