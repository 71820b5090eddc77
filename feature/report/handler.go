package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the reporting queries over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reporting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/stats", h.HandleStats)
	group.Get("/history", h.HandleHistory)
	group.Get("/breakdowns", h.HandleBreakdowns)
	group.Get("/quality", h.HandleQuality)
}

// HandleStats returns per-table row counts.
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		h.service.logger.Error("stats query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleHistory returns load history grouped by insertion date.
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	history, err := h.service.LoadHistory(c.Context())
	if err != nil {
		h.service.logger.Error("history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(history)
}

// HandleBreakdowns returns per-type rollups for each table.
func (h *Handler) HandleBreakdowns(c *fiber.Ctx) error {
	breakdowns, err := h.service.Breakdowns(c.Context())
	if err != nil {
		h.service.logger.Error("breakdown query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(breakdowns)
}

// HandleQuality runs the data quality report.
func (h *Handler) HandleQuality(c *fiber.Ctx) error {
	report, err := h.service.Quality(c.Context())
	if err != nil {
		h.service.logger.Error("quality report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
