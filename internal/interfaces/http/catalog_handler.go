package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/dto"
)

// CatalogHandler maneja categorías, marcas y métodos de pago (protegido).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "nombre único"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
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
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "solo activas"
// @Success      200  {array}  object
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.Context(), GetRole(c), c.QueryBool("only_active", false))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// ToggleCategory godoc
// @Summary      Activar o desactivar categoría
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID de la categoría"
// @Param        active  query  bool    true  "nuevo estado"
// @Success      200  {object}  map[string]string
// @Router       /api/categories/{id}/toggle [patch]
func (h *CatalogHandler) ToggleCategory(c *fiber.Ctx) error {
	if err := h.uc.ToggleCategory(c.Context(), GetRole(c), c.Params("id"), c.QueryBool("active", true)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "categoría actualizada"})
}

// CreateBrand godoc
// @Summary      Crear marca
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "nombre único"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	brand, err := h.uc.CreateBrand(c.Context(), GetRole(c), in.Name)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "solo activas"
// @Success      200  {array}  object
// @Router       /api/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	list, err := h.uc.ListBrands(c.Context(), GetRole(c), c.QueryBool("only_active", false))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// ToggleBrand godoc
// @Summary      Activar o desactivar marca
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID de la marca"
// @Param        active  query  bool    true  "nuevo estado"
// @Success      200  {object}  map[string]string
// @Router       /api/brands/{id}/toggle [patch]
func (h *CatalogHandler) ToggleBrand(c *fiber.Ctx) error {
	if err := h.uc.ToggleBrand(c.Context(), GetRole(c), c.Params("id"), c.QueryBool("active", true)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "marca actualizada"})
}

// UpdateBrandPrices godoc
// @Summary      Reajustar precios de una marca
// @Description  Aplica un porcentaje (positivo o negativo) al precio de todos los productos activos de la marca. Todo o nada.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandPricesRequest  true  "porcentaje de ajuste"
// @Success      200   {object}  map[string]int
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/brands/{id}/prices [post]
func (h *CatalogHandler) UpdateBrandPrices(c *fiber.Ctx) error {
	var in dto.UpdateBrandPricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	updated, err := h.uc.UpdateBrandPrices(c.Context(), GetRole(c), c.Params("id"), in.Percent)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// CreatePaymentMethod godoc
// @Summary      Crear método de pago
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "nombre único"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *CatalogHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	method, err := h.uc.CreatePaymentMethod(c.Context(), GetRole(c), in.Name)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(method)
}

// ListPaymentMethods godoc
// @Summary      Listar métodos de pago
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "solo activos"
// @Success      200  {array}  object
// @Router       /api/payment-methods [get]
func (h *CatalogHandler) ListPaymentMethods(c *fiber.Ctx) error {
	list, err := h.uc.ListPaymentMethods(c.Context(), GetRole(c), c.QueryBool("only_active", false))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// TogglePaymentMethod godoc
// @Summary      Activar o desactivar método de pago
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID del método"
// @Param        active  query  bool    true  "nuevo estado"
// @Success      200  {object}  map[string]string
// @Router       /api/payment-methods/{id}/toggle [patch]
func (h *CatalogHandler) TogglePaymentMethod(c *fiber.Ctx) error {
	if err := h.uc.TogglePaymentMethod(c.Context(), GetRole(c), c.Params("id"), c.QueryBool("active", true)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "método de pago actualizado"})
}
