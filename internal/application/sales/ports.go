package sales

import (
	"context"

	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// o se confirma todo (lotes, venta, movimiento de caja) o no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		batchRepo repository.BatchRepository,
		saleRepo repository.SaleRepository,
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
