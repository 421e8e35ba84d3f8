package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo comercializable del inventario.
// No almacena el stock directamente: el disponible se deriva sumando la
// cantidad restante de sus lotes (ver Batch).
type Product struct {
	ID            string
	Name          string
	Description   string
	CategoryID    string // vacío si no tiene categoría
	BrandID       string // vacío si no tiene marca
	Unit          string // "un", "kg", "lt", etc.
	Price         decimal.Decimal // precio de venta vigente
	MinStock      decimal.Decimal // umbral de alerta de stock bajo (>= 0)
	Barcode       string
	VisibleOnline bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
