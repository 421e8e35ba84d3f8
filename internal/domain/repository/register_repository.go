package repository

import "github.com/Misa55555/stockpro-api/internal/domain/entity"

// RegisterSessionRepository puerto de persistencia para sesiones de caja.
type RegisterSessionRepository interface {
	Create(session *entity.RegisterSession) error
	GetByID(id string) (*entity.RegisterSession, error)
	// GetOpen devuelve la sesión OPEN o nil si no hay ninguna.
	GetOpen() (*entity.RegisterSession, error)
	// GetOpenForUpdate devuelve la sesión OPEN bloqueando la fila
	// (SELECT FOR UPDATE) para serializar apertura, ventas y cierre.
	GetOpenForUpdate() (*entity.RegisterSession, error)
	// Close persiste los campos de cierre; la sesión queda CLOSED.
	Close(session *entity.RegisterSession) error
	List(limit, offset int) ([]*entity.RegisterSession, error)
}

// MovementRepository puerto de persistencia para movimientos de caja.
// Los movimientos son inmutables: solo Create y lectura.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListBySession(sessionID string) ([]*entity.Movement, error)
}
