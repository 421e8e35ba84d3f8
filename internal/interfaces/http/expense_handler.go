package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/application/finance"
)

// ExpenseHandler maneja gastos operativos y sus categorías (solo admin).
type ExpenseHandler struct {
	uc *finance.UseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *finance.UseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría de gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "nombre único"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expense-categories [post]
func (h *ExpenseHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.CreateCategory(c.Context(), GetRole(c), in.Name)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories godoc
// @Summary      Listar categorías de gasto
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  object
// @Router       /api/expense-categories [get]
func (h *ExpenseHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.Context(), GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar gasto
// @Description  accrual_date permite imputar el gasto al período contable correcto; por defecto hoy.
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "category_id, amount, description, accrual_date"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	expense, err := h.uc.CreateExpense(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

// List godoc
// @Summary      Listar gastos de un período
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "fecha desde (RFC3339, default inicio de mes)"
// @Param        to      query  string  false  "fecha hasta (RFC3339, default hoy)"
// @Param        limit   query  int     false  "límite (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now
	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
		}
		to = parsed
	}

	list, err := h.uc.ListExpenses(c.Context(), GetRole(c), from, to, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// MonthlySummary godoc
// @Summary      Resumen mensual de gastos por categoría
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  false  "año (default actual)"
// @Param        month  query  int  false  "mes 1-12 (default actual)"
// @Success      200  {object}  dto.ExpenseSummaryResponse
// @Router       /api/expenses/summary [get]
func (h *ExpenseHandler) MonthlySummary(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes fuera de rango"})
	}
	summary, err := h.uc.MonthlySummary(c.Context(), GetRole(c), year, time.Month(month))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}
