package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/analytics"
)

// DashboardHandler expone las métricas del panel principal (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard del día
// @Description  Ventas de hoy, productos con stock bajo o agotado y lotes por vencer o vencidos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Build(c.Context(), GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
