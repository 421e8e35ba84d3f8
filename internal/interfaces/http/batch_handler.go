package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/dto"
)

// BatchHandler maneja los lotes de mercadería (protegido).
type BatchHandler struct {
	uc *catalog.UseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *catalog.UseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

type updateBatchRequest struct {
	QtyRemaining  decimal.Decimal `json:"qty_remaining"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

// Create godoc
// @Summary      Registrar ingreso de mercadería (lote)
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "product_id, quantity, purchase_price, expires_at (opcional)"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.CreateBatch(c.Context(), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// ListByProduct godoc
// @Summary      Listar lotes de un producto
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {array}   dto.BatchResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id}/batches [get]
func (h *BatchHandler) ListByProduct(c *fiber.Ctx) error {
	batches, err := h.uc.ListBatches(c.Context(), GetRole(c), c.Params("product_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batches)
}

// Update godoc
// @Summary      Corregir un lote (ajuste administrativo)
// @Description  Permite ajustar cantidad restante, costo y vencimiento. La restante nunca supera la recibida.
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  object  true  "qty_remaining, purchase_price, expires_at"
// @Success      200   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var in updateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.UpdateBatch(c.Context(), GetRole(c), c.Params("id"), in.QtyRemaining, in.PurchasePrice, in.ExpiresAt)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batch)
}

// Delete godoc
// @Summary      Eliminar un lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBatch(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lote eliminado"})
}

// ExpiringSoon godoc
// @Summary      Lotes por vencer dentro del horizonte indicado
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "horizonte en días (default 7)"
// @Success      200  {array}   dto.BatchResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/batches/expiring [get]
func (h *BatchHandler) ExpiringSoon(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	batches, err := h.uc.ExpiringSoon(c.Context(), days)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(batches)
}
