package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/application/sales"
)

// CustomerHandler alta y búsqueda de clientes desde el mostrador.
type CustomerHandler struct {
	uc *sales.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *sales.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Alta rápida de cliente
// @Description  Crea el cliente y su usuario asociado (rol cliente, sin credenciales).
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.CreateCustomer(c.Context(), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Search godoc
// @Summary      Buscar clientes
// @Description  Autocompletado por nombre parcial, DNI o teléfono.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        term  query  string  false  "texto a buscar"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.SearchCustomers(c.Context(), GetRole(c), c.Query("term"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}
