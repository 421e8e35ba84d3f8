package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	BrandID       string          `json:"brand_id,omitempty"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Barcode       string          `json:"barcode,omitempty"`
	VisibleOnline *bool           `json:"visible_online,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	BrandID       string          `json:"brand_id,omitempty"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Barcode       string          `json:"barcode,omitempty"`
	VisibleOnline *bool           `json:"visible_online,omitempty"`
}

// ProductResponse producto con su stock disponible calculado.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	CategoryID    string          `json:"category_id,omitempty"`
	BrandID       string          `json:"brand_id,omitempty"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	MinStock      decimal.Decimal `json:"min_stock"`
	Barcode       string          `json:"barcode,omitempty"`
	VisibleOnline bool            `json:"visible_online"`
	Active        bool            `json:"active"`
	Stock         decimal.Decimal `json:"stock"`
	LowStock      bool            `json:"low_stock"`
}

// CreateBatchRequest body para POST /api/batches (ingreso de mercadería).
type CreateBatchRequest struct {
	ProductID     string          `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
}

// BatchResponse lote con su estado.
type BatchResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	QtyReceived   decimal.Decimal `json:"qty_received"`
	QtyRemaining  decimal.Decimal `json:"qty_remaining"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	ReceivedAt    time.Time       `json:"received_at"`
}

// UpdateBrandPricesRequest body para POST /api/brands/:id/prices.
// Percent positivo aumenta, negativo descuenta (debe ser > -100).
type UpdateBrandPricesRequest struct {
	Percent decimal.Decimal `json:"percent"`
}

// NameRequest body genérico para categorías, marcas y métodos de pago.
type NameRequest struct {
	Name string `json:"name"`
}
