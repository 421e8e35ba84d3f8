package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/infrastructure/excel"
)

// ExportHandler genera la planilla de inventario en xlsx (solo admin).
type ExportHandler struct {
	catalogUC *catalog.UseCase
	exporter  *excel.StockExporter
}

// NewExportHandler construye el handler.
func NewExportHandler(catalogUC *catalog.UseCase, exporter *excel.StockExporter) *ExportHandler {
	return &ExportHandler{catalogUC: catalogUC, exporter: exporter}
}

// StockExcel godoc
// @Summary      Exportar inventario a Excel
// @Description  Una fila por producto con stock disponible, mínimo y precio vigente, para control físico.
// @Tags         export
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock/export [get]
func (h *ExportHandler) StockExcel(c *fiber.Ctx) error {
	// sin paginación: la planilla cubre el catálogo completo
	products, err := h.catalogUC.ListProducts(c.Context(), GetRole(c), false, 100000, 0)
	if err != nil {
		return domainError(c, err)
	}
	rows := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		rows = append(rows, *p)
	}
	data, err := h.exporter.Export(rows)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="inventario.xlsx"`)
	return c.Send(data)
}
