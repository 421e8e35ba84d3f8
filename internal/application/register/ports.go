package register

import (
	"context"

	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de caja atados a esa tx. Apertura, movimientos manuales y
// cierre se serializan sobre la fila de la sesión abierta.
type TxRunner interface {
	RunRegister(ctx context.Context, fn func(
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
