package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	CategoryID  string          `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	AccrualDate *time.Time      `json:"accrual_date,omitempty"` // por defecto hoy
}

// ExpenseResponse gasto persistido.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	AccrualDate time.Time       `json:"accrual_date"`
}

// ExpenseSummaryResponse totales por categoría en un período.
type ExpenseSummaryResponse struct {
	From   time.Time                  `json:"from"`
	To     time.Time                  `json:"to"`
	Totals map[string]decimal.Decimal `json:"totals_by_category"`
	Total  decimal.Decimal            `json:"total"`
}
