package collection

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mtg-collector/core/logger"
)

// Handler handles HTTP requests for the collection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/collection", h.HandleList)
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleList returns the whole collection in insertion order.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cards, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to list collection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list collection",
		})
	}

	return c.JSON(fiber.Map{
		"count": len(cards),
		"cards": cards,
	})
}
