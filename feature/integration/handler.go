package integration

import (
	"hr-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the out-of-band run trigger.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the integration routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integration")
	group.Post("/run", h.HandleRun)
}

// HandleRun executes one integration run and returns the finished report.
// A fatal source failure yields 502 with the single-error report attached;
// per-record failures are visible only inside the report.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Integration run triggered via API")

	rep, err := h.service.Run(c.Context())
	if err != nil {
		l.Error("Integration run failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  err.Error(),
			"report": rep,
		})
	}

	return c.JSON(rep)
}
