package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktrack/internal/application/analytics"
)

// DashboardHandler sirve el resumen del inventario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del inventario (totales, gráfico, movimientos recientes)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
