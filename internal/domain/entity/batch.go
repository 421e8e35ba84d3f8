package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa una partida de ingreso de mercadería (lote).
// Invariante: 0 <= QtyRemaining <= QtyReceived. Un producto tiene muchos
// lotes; el lote solo se elimina por acción administrativa explícita.
type Batch struct {
	ID            string
	ProductID     string
	QtyReceived   decimal.Decimal
	QtyRemaining  decimal.Decimal
	PurchasePrice decimal.Decimal // costo unitario de compra del lote
	ExpiresAt     *time.Time      // nil si el producto no vence
	ReceivedAt    time.Time
}

// Expired indica si el lote está vencido respecto de la fecha dada.
func (b *Batch) Expired(today time.Time) bool {
	if b.ExpiresAt == nil {
		return false
	}
	return b.ExpiresAt.Before(today)
}
