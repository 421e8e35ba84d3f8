package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// UseCase administra el catálogo: productos, lotes, categorías, marcas y
// métodos de pago. El stock disponible de un producto se deriva siempre de
// sus lotes; acá no hay contador duplicado que mantener.
type UseCase struct {
	productRepo  repository.ProductRepository
	batchRepo    repository.BatchRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	paymentRepo  repository.PaymentMethodRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	paymentRepo repository.PaymentMethodRepository,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		batchRepo:    batchRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		paymentRepo:  paymentRepo,
	}
}

// ─── Productos ───────────────────────────────────────────────────────────────

// CreateProduct da de alta un producto. MinStock debe ser >= 0.
func (uc *UseCase) CreateProduct(ctx context.Context, role string, in dto.CreateProductRequest) (*entity.Product, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.MinStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.BrandID != "" {
		brand, err := uc.brandRepo.GetByID(in.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	visible := true
	if in.VisibleOnline != nil {
		visible = *in.VisibleOnline
	}
	unit := in.Unit
	if unit == "" {
		unit = "un"
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		BrandID:       in.BrandID,
		Unit:          unit,
		Price:         in.Price,
		MinStock:      in.MinStock,
		Barcode:       in.Barcode,
		VisibleOnline: visible,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct modifica los datos comerciales de un producto. El cambio de
// precio no afecta ventas pasadas: las líneas guardan su propia foto.
func (uc *UseCase) UpdateProduct(ctx context.Context, role, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.MinStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.BrandID = in.BrandID
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.Price = in.Price
	product.MinStock = in.MinStock
	product.Barcode = in.Barcode
	if in.VisibleOnline != nil {
		product.VisibleOnline = *in.VisibleOnline
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct devuelve un producto con su stock disponible.
func (uc *UseCase) GetProduct(ctx context.Context, role, id string) (*dto.ProductResponse, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.batchRepo.SumRemaining(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, stock), nil
}

// GetProductByBarcode busca un producto por código de barras, con su stock.
// Es la consulta del lector del mostrador.
func (uc *UseCase) GetProductByBarcode(ctx context.Context, role, barcode string) (*dto.ProductResponse, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stock, err := uc.batchRepo.SumRemaining(product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, stock), nil
}

// ListProducts lista productos con su stock calculado.
func (uc *UseCase) ListProducts(ctx context.Context, role string, onlyActive bool, limit, offset int) ([]*dto.ProductResponse, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	products, err := uc.productRepo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		stock, err := uc.batchRepo.SumRemaining(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toProductResponse(p, stock))
	}
	return out, nil
}

// ToggleProduct activa o desactiva un producto sin borrarlo.
func (uc *UseCase) ToggleProduct(ctx context.Context, role, id string, active bool) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.SetActive(id, active)
}

// DeleteProduct elimina un producto y, en cascada, sus lotes.
func (uc *UseCase) DeleteProduct(ctx context.Context, role, id string) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// StockOnHand suma la cantidad restante de todos los lotes del producto.
// La fecha de vencimiento no descuenta disponibilidad: afecta el orden de
// salida (FEFO) y las alertas, no el total.
func (uc *UseCase) StockOnHand(ctx context.Context, productID string) (decimal.Decimal, error) {
	return uc.batchRepo.SumRemaining(productID)
}

// IsLowStock indica si el producto está por debajo de su umbral mínimo.
func (uc *UseCase) IsLowStock(ctx context.Context, productID string) (bool, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, domain.ErrNotFound
	}
	stock, err := uc.batchRepo.SumRemaining(productID)
	if err != nil {
		return false, err
	}
	return stock.LessThan(product.MinStock), nil
}

// ExpiringSoon devuelve lotes con stock cuyo vencimiento cae dentro del
// horizonte indicado. Lotes sin fecha de vencimiento quedan excluidos.
func (uc *UseCase) ExpiringSoon(ctx context.Context, withinDays int) ([]*entity.Batch, error) {
	today := truncateDay(time.Now())
	return uc.batchRepo.ListExpiringBetween(today, today.AddDate(0, 0, withinDays))
}

// ─── Lotes ───────────────────────────────────────────────────────────────────

// CreateBatch registra un ingreso de mercadería: la cantidad recibida y la
// restante arrancan iguales.
func (uc *UseCase) CreateBatch(ctx context.Context, role string, in dto.CreateBatchRequest) (*entity.Batch, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.PurchasePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	batch := &entity.Batch{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		QtyReceived:   in.Quantity,
		QtyRemaining:  in.Quantity,
		PurchasePrice: in.PurchasePrice,
		ExpiresAt:     in.ExpiresAt,
		ReceivedAt:    time.Now(),
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// ListBatches lista los lotes de un producto (histórico incluido).
func (uc *UseCase) ListBatches(ctx context.Context, role, productID string) ([]*entity.Batch, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	return uc.batchRepo.ListByProduct(productID)
}

// UpdateBatch corrige costo, vencimiento o cantidad restante de un lote
// (ajuste administrativo). Invariante: 0 <= restante <= recibido.
func (uc *UseCase) UpdateBatch(ctx context.Context, role, id string, qtyRemaining, purchasePrice decimal.Decimal, expiresAt *time.Time) (*entity.Batch, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if qtyRemaining.LessThan(decimal.Zero) || qtyRemaining.GreaterThan(batch.QtyReceived) {
		return nil, domain.ErrInvalidInput
	}
	if purchasePrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	batch.QtyRemaining = qtyRemaining
	batch.PurchasePrice = purchasePrice
	batch.ExpiresAt = expiresAt
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// DeleteBatch elimina un lote. Solo por decisión administrativa explícita;
// las ventas nunca borran lotes, solo los dejan en cero.
func (uc *UseCase) DeleteBatch(ctx context.Context, role, id string) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if batch == nil {
		return domain.ErrNotFound
	}
	return uc.batchRepo.Delete(id)
}

// ─── Categorías, marcas y métodos de pago ────────────────────────────────────

// CreateCategory da de alta una categoría de nombre único.
func (uc *UseCase) CreateCategory(ctx context.Context, role, name string) (*entity.Category, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:            uuid.New().String(),
		Name:          name,
		VisibleOnline: true,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista categorías.
func (uc *UseCase) ListCategories(ctx context.Context, role string, onlyActive bool) ([]*entity.Category, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	return uc.categoryRepo.List(onlyActive)
}

// ToggleCategory activa o desactiva una categoría.
func (uc *UseCase) ToggleCategory(ctx context.Context, role, id string, active bool) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	return uc.categoryRepo.SetActive(id, active)
}

// CreateBrand da de alta una marca de nombre único.
func (uc *UseCase) CreateBrand(ctx context.Context, role, name string) (*entity.Brand, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ListBrands lista marcas.
func (uc *UseCase) ListBrands(ctx context.Context, role string, onlyActive bool) ([]*entity.Brand, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	return uc.brandRepo.List(onlyActive)
}

// ToggleBrand activa o desactiva una marca.
func (uc *UseCase) ToggleBrand(ctx context.Context, role, id string, active bool) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	return uc.brandRepo.SetActive(id, active)
}

// UpdateBrandPrices aplica un aumento o descuento porcentual al precio de
// todos los productos activos de una marca. Ej: 10 -> factor 1.10;
// -10 -> factor 0.90. Un solo UPDATE: se reajustan todos o ninguno.
// Devuelve cuántos productos cambiaron.
func (uc *UseCase) UpdateBrandPrices(ctx context.Context, role, brandID string, percent decimal.Decimal) (int64, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return 0, domain.ErrForbidden
	}
	// un descuento del 100% o más dejaría precios en cero o negativos
	if !percent.GreaterThan(decimal.NewFromInt(-100)) {
		return 0, domain.ErrInvalidInput
	}
	brand, err := uc.brandRepo.GetByID(brandID)
	if err != nil {
		return 0, err
	}
	if brand == nil {
		return 0, domain.ErrNotFound
	}
	factor := decimal.NewFromInt(1).Add(percent.Div(decimal.NewFromInt(100)))
	return uc.productRepo.UpdatePricesByBrand(brandID, factor)
}

// CreatePaymentMethod da de alta un método de pago.
func (uc *UseCase) CreatePaymentMethod(ctx context.Context, role, name string) (*entity.PaymentMethod, error) {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return nil, domain.ErrForbidden
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.paymentRepo.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

// ListPaymentMethods lista métodos de pago.
func (uc *UseCase) ListPaymentMethods(ctx context.Context, role string, onlyActive bool) ([]*entity.PaymentMethod, error) {
	if !domain.HasPermission(role, domain.OpCatalogRead) {
		return nil, domain.ErrForbidden
	}
	return uc.paymentRepo.List(onlyActive)
}

// TogglePaymentMethod activa o desactiva un método de pago.
func (uc *UseCase) TogglePaymentMethod(ctx context.Context, role, id string, active bool) error {
	if !domain.HasPermission(role, domain.OpCatalogWrite) {
		return domain.ErrForbidden
	}
	return uc.paymentRepo.SetActive(id, active)
}

func toProductResponse(p *entity.Product, stock decimal.Decimal) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		BrandID:       p.BrandID,
		Unit:          p.Unit,
		Price:         p.Price,
		MinStock:      p.MinStock,
		Barcode:       p.Barcode,
		VisibleOnline: p.VisibleOnline,
		Active:        p.Active,
		Stock:         stock,
		LowStock:      stock.LessThan(p.MinStock),
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
