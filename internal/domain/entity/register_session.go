package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una sesión de caja.
const (
	RegisterStatusOpen   = "OPEN"
	RegisterStatusClosed = "CLOSED"
)

// Tipos de movimiento de caja.
const (
	MovementKindSale      = "SALE"
	MovementKindManualIn  = "MANUAL_IN"
	MovementKindManualOut = "MANUAL_OUT"
)

// RegisterSession representa el período entre apertura y cierre de la caja.
// Invariante: a lo sumo una sesión OPEN en todo el sistema. El cierre es
// terminal: una sesión CLOSED no se reabre.
type RegisterSession struct {
	ID              string
	Status          string // OPEN | CLOSED
	OpeningBalance  decimal.Decimal
	OpenedBy        string
	OpenedAt        time.Time
	DeclaredBalance *decimal.Decimal // arqueo físico, solo al cerrar
	ExpectedBalance *decimal.Decimal // calculado al cerrar
	Variance        *decimal.Decimal // declarado - esperado (positivo = sobrante)
	Notes           string
	ClosedBy        string
	ClosedAt        *time.Time
}

// Open indica si la sesión sigue abierta.
func (s *RegisterSession) Open() bool {
	return s.Status == RegisterStatusOpen
}

// Movement es un asiento inmutable del libro de caja de una sesión.
// Nunca se modifica ni se borra una vez creado.
type Movement struct {
	ID          string
	SessionID   string
	Kind        string // SALE | MANUAL_IN | MANUAL_OUT
	Amount      decimal.Decimal // siempre positivo; el signo lo da Kind
	Description string
	Reference   string // ID de la venta para SALE; vacío en manuales
	CreatedAt   time.Time
	CreatedBy   string
}
