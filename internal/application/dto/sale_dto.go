package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea del carrito: producto y cantidad.
type SaleLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	PaymentMethodID string            `json:"payment_method_id"`
	CustomerID      string            `json:"customer_id,omitempty"`
	Discount        decimal.Decimal   `json:"discount,omitempty"`
	Lines           []SaleLineRequest `json:"lines"`
}

// SaleLineResponse línea persistida con precios congelados.
type SaleLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateCustomerRequest alta rápida de cliente desde el mostrador.
type CreateCustomerRequest struct {
	FullName string `json:"full_name"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// CustomerResponse cliente para asociar a una venta. El ID es el user_id.
type CustomerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	DNI      string `json:"dni"`
	Phone    string `json:"phone,omitempty"`
}

// SaleResponse ticket resultante de una venta.
type SaleResponse struct {
	ID        string             `json:"id"`
	Total     decimal.Decimal    `json:"total"`
	Discount  decimal.Decimal    `json:"discount"`
	CreatedAt time.Time          `json:"created_at"`
	Lines     []SaleLineResponse `json:"lines"`
}
