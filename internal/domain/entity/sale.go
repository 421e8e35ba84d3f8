package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta (ticket).
type Sale struct {
	ID              string
	SessionID       string // sesión de caja en la que se registró
	SellerID        string
	CustomerID      string // vacío si es venta sin cliente
	PaymentMethodID string
	Discount        decimal.Decimal
	Total           decimal.Decimal // suma de subtotales - descuento, nunca negativo
	CreatedAt       time.Time
	Lines           []*SaleLine
}

// SaleLine es una línea de la venta. UnitPrice y UnitCost son fotos al
// momento de la transacción: cambios posteriores de precio no alteran
// ventas pasadas.
type SaleLine struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal // precio de venta en el momento
	UnitCost  decimal.Decimal // costo promedio ponderado de los lotes consumidos
	Subtotal  decimal.Decimal // Quantity * UnitPrice
}
