package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes.
// Usado dentro de transacciones para garantizar consistencia del stock.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	Update(batch *entity.Batch) error
	Delete(id string) error
	ListByProduct(productID string) ([]*entity.Batch, error)
	// ListAvailableForUpdate devuelve los lotes con cantidad restante > 0 de un
	// producto, ordenados por vencimiento ascendente (NULLS LAST, estrategia
	// FEFO), bloqueando las filas (SELECT FOR UPDATE).
	ListAvailableForUpdate(productID string) ([]*entity.Batch, error)
	// UpdateRemaining fija la cantidad restante de un lote.
	UpdateRemaining(id string, qtyRemaining decimal.Decimal) error
	// SumRemaining suma la cantidad restante de todos los lotes del producto.
	SumRemaining(productID string) (decimal.Decimal, error)
	// ListExpiringBetween devuelve lotes con stock cuyo vencimiento cae en [from, to].
	ListExpiringBetween(from, to time.Time) ([]*entity.Batch, error)
	// ListExpired devuelve lotes con stock ya vencidos respecto de asOf.
	ListExpired(asOf time.Time) ([]*entity.Batch, error)
}
