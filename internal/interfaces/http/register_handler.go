package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/application/register"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// RegisterHandler maneja la sesión de caja: apertura, movimientos y cierre (protegido).
type RegisterHandler struct {
	uc *register.UseCase
}

// NewRegisterHandler construye el handler.
func NewRegisterHandler(uc *register.UseCase) *RegisterHandler {
	return &RegisterHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir caja
// @Tags         register
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenRegisterRequest  true  "saldo inicial contado"
// @Success      201   {object}  dto.RegisterSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/register/open [post]
func (h *RegisterHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.uc.Open(c.Context(), GetUserID(c), GetRole(c), in.OpeningBalance)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(session))
}

// PostMovement godoc
// @Summary      Asentar movimiento manual de caja
// @Description  MANUAL_IN para ingresos (cambio, aporte), MANUAL_OUT para egresos (pago a proveedor). Monto siempre positivo.
// @Tags         register
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualMovementRequest  true  "kind, amount, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/register/movements [post]
func (h *RegisterHandler) PostMovement(c *fiber.Ctx) error {
	var in dto.ManualMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.PostManualMovement(c.Context(), GetUserID(c), GetRole(c), in.Kind, in.Amount, in.Description)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement)
}

// Close godoc
// @Summary      Cerrar caja con arqueo
// @Description  Calcula el saldo esperado plegando los movimientos de la sesión y persiste el desvío contra lo declarado.
// @Tags         register
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseRegisterRequest  true  "saldo físico contado y notas"
// @Success      200   {object}  dto.ClosureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/register/close [post]
func (h *RegisterHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	session, err := h.uc.Close(c.Context(), GetUserID(c), GetRole(c), in.DeclaredBalance, in.Notes)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ClosureResponse{
		SessionID:       session.ID,
		ExpectedBalance: *session.ExpectedBalance,
		DeclaredBalance: *session.DeclaredBalance,
		Variance:        *session.Variance,
		ClosedAt:        *session.ClosedAt,
	})
}

// Current godoc
// @Summary      Sesión de caja abierta
// @Tags         register
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RegisterSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/register/current [get]
func (h *RegisterHandler) Current(c *fiber.Ctx) error {
	session, err := h.uc.Current(c.Context(), GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_OPEN_REGISTER", Message: "no hay caja abierta"})
	}
	return c.JSON(toSessionResponse(session))
}

// History godoc
// @Summary      Historial de sesiones de caja
// @Tags         register
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "límite (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.RegisterSessionResponse
// @Router       /api/register/sessions [get]
func (h *RegisterHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	sessions, err := h.uc.History(c.Context(), GetRole(c), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.RegisterSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionResponse(s))
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Libro de movimientos de una sesión
// @Tags         register
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {array}   object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/register/sessions/{id}/movements [get]
func (h *RegisterHandler) Movements(c *fiber.Ctx) error {
	movements, err := h.uc.Movements(c.Context(), GetRole(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(movements)
}

func toSessionResponse(s *entity.RegisterSession) dto.RegisterSessionResponse {
	return dto.RegisterSessionResponse{
		ID:              s.ID,
		Status:          s.Status,
		OpeningBalance:  s.OpeningBalance,
		OpenedAt:        s.OpenedAt,
		OpenedBy:        s.OpenedBy,
		DeclaredBalance: s.DeclaredBalance,
		ExpectedBalance: s.ExpectedBalance,
		Variance:        s.Variance,
		ClosedAt:        s.ClosedAt,
		Notes:           s.Notes,
	}
}
