package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// ProductStock par producto + stock disponible, para alertas de inventario.
type ProductStock struct {
	Product *entity.Product
	Stock   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// SalesTotals devuelve el total facturado y la cantidad de tickets en [from, to).
	SalesTotals(from, to time.Time) (total decimal.Decimal, count int, err error)
	// LowStockProducts productos activos con 0 < stock <= stock mínimo.
	LowStockProducts() ([]*ProductStock, error)
	// OutOfStockProducts productos activos sin stock disponible.
	OutOfStockProducts() ([]*ProductStock, error)
}
