package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenRegisterRequest body para POST /api/register/open.
type OpenRegisterRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ManualMovementRequest body para POST /api/register/movements.
type ManualMovementRequest struct {
	Kind        string          `json:"kind"` // MANUAL_IN | MANUAL_OUT
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CloseRegisterRequest body para POST /api/register/close.
type CloseRegisterRequest struct {
	DeclaredBalance decimal.Decimal `json:"declared_balance"`
	Notes           string          `json:"notes,omitempty"`
}

// RegisterSessionResponse estado de una sesión de caja.
type RegisterSessionResponse struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	OpeningBalance  decimal.Decimal  `json:"opening_balance"`
	OpenedAt        time.Time        `json:"opened_at"`
	OpenedBy        string           `json:"opened_by"`
	DeclaredBalance *decimal.Decimal `json:"declared_balance,omitempty"`
	ExpectedBalance *decimal.Decimal `json:"expected_balance,omitempty"`
	Variance        *decimal.Decimal `json:"variance,omitempty"`
	ClosedAt        *time.Time       `json:"closed_at,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// ClosureResponse resultado del cierre de caja.
type ClosureResponse struct {
	SessionID       string          `json:"session_id"`
	ExpectedBalance decimal.Decimal `json:"expected_balance"`
	DeclaredBalance decimal.Decimal `json:"declared_balance"`
	Variance        decimal.Decimal `json:"variance"`
	ClosedAt        time.Time       `json:"closed_at"`
}
