package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/application/sales"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// SaleHandler maneja el registro de ventas (protegido).
type SaleHandler struct {
	uc *sales.RecordSaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.RecordSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta
// @Description  Descuenta stock por lote en orden de vencimiento y asienta el cobro en la caja abierta. Todo o nada.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "líneas del carrito, método de pago, descuento opcional"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := sales.SaleInputDTO{
		UserID:          GetUserID(c),
		Role:            GetRole(c),
		PaymentMethodID: in.PaymentMethodID,
		CustomerID:      in.CustomerID,
		Discount:        in.Discount,
		Lines:           make([]sales.SaleLineInput, 0, len(in.Lines)),
	}
	for _, line := range in.Lines {
		input.Lines = append(input.Lines, sales.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	sale, err := h.uc.RecordSale(c.Context(), input)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

func toSaleResponse(sale *entity.Sale) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:        sale.ID,
		Total:     sale.Total,
		Discount:  sale.Discount,
		CreatedAt: sale.CreatedAt,
		Lines:     make([]dto.SaleLineResponse, 0, len(sale.Lines)),
	}
	for _, l := range sale.Lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return resp
}
