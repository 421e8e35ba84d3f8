package repository

import (
	"time"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	// Create persiste la cabecera y todas las líneas.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListBySession(sessionID string) ([]*entity.Sale, error)
	ListBetween(from, to time.Time, limit, offset int) ([]*entity.Sale, error)
}
