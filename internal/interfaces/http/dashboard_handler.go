package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/analytics"
	"github.com/appdev0823/nhap-thanh-long-heroku/pkg/logger"
)

// DashboardHandler expone el resumen de ventas.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen de ventas de hoy y del mes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, h.log, "dashboard.summary", err)
	}
	return c.JSON(out)
}
