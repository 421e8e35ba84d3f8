package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory agrupa gastos operativos (Infraestructura, Personal…).
type ExpenseCategory struct {
	ID        string
	Name      string // único
	CreatedAt time.Time
}

// Expense es un egreso operativo no vinculado a compra de mercadería.
// AccrualDate es la fecha contable a la que pertenece el gasto (devengado),
// independiente de la fecha de carga.
type Expense struct {
	ID          string
	CategoryID  string
	Amount      decimal.Decimal
	Description string
	AccrualDate time.Time
	CreatedAt   time.Time
	CreatedBy   string
}
