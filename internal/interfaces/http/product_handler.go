package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/dto"
)

// ProductHandler maneja el CRUD de productos (protegido).
type ProductHandler struct {
	uc *catalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.CreateProduct(c.Context(), GetRole(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Listar productos con stock
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        only_active  query  bool  false  "solo productos activos"
// @Param        limit        query  int   false  "límite (default 20)"
// @Param        offset       query  int   false  "desplazamiento"
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	onlyActive := c.QueryBool("only_active", false)
	list, err := h.uc.ListProducts(c.Context(), GetRole(c), onlyActive, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// GetByBarcode godoc
// @Summary      Buscar producto por código de barras
// @Description  Consulta del lector del mostrador: devuelve el producto con su stock.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código de barras"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/barcode/{code} [get]
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	product, err := h.uc.GetProductByBarcode(c.Context(), GetRole(c), c.Params("code"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(product)
}

// GetByID godoc
// @Summary      Obtener producto con stock disponible
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Context(), GetRole(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(product)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  El cambio de precio no altera ventas pasadas: cada línea guarda su foto.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.UpdateProduct(c.Context(), GetRole(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(product)
}

// Toggle godoc
// @Summary      Activar o desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID del producto"
// @Param        active  query  bool    true  "nuevo estado"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/toggle [patch]
func (h *ProductHandler) Toggle(c *fiber.Ctx) error {
	active := c.QueryBool("active", true)
	if err := h.uc.ToggleProduct(c.Context(), GetRole(c), c.Params("id"), active); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto actualizado"})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto eliminado"})
}
