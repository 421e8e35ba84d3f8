package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItem producto bajo el umbral mínimo.
type LowStockItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

// ExpiryItem lote por vencer o vencido con stock remanente.
type ExpiryItem struct {
	BatchID      string          `json:"batch_id"`
	ProductID    string          `json:"product_id"`
	QtyRemaining decimal.Decimal `json:"qty_remaining"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// DashboardResponse métricas del día y alertas de inventario.
type DashboardResponse struct {
	TodayTotal    decimal.Decimal `json:"today_total"`
	TodayTickets  int             `json:"today_tickets"`
	LowStock      []LowStockItem  `json:"low_stock"`
	OutOfStock    []LowStockItem  `json:"out_of_stock"`
	ExpiringSoon  []ExpiryItem    `json:"expiring_soon"`
	Expired       []ExpiryItem    `json:"expired"`
}
