package report

import (
	"strconv"

	"hr-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the report listing endpoint.
type Handler struct {
	sink   *FileSink
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler over the file sink.
func NewHandler(sink *FileSink, l *zap.Logger) *Handler {
	return &Handler{sink: sink, logger: l}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/reports", h.HandleListReports)
}

// HandleListReports returns the most recent report artifacts, newest first.
// The optional limit query parameter caps the result (default 10).
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit must be a positive integer",
			})
		}
		limit = n
	}

	artifacts, err := h.sink.Latest(limit)
	if err != nil {
		l.Error("Failed to list reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count":   len(artifacts),
		"reports": artifacts,
	})
}
