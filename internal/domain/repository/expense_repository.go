package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// ExpenseCategoryRepository puerto de persistencia para categorías de gasto.
type ExpenseCategoryRepository interface {
	Create(category *entity.ExpenseCategory) error
	GetByID(id string) (*entity.ExpenseCategory, error)
	List() ([]*entity.ExpenseCategory, error)
	Delete(id string) error
}

// ExpenseRepository puerto de persistencia para gastos operativos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	// ListByAccrual lista gastos cuya fecha de imputación cae en [from, to].
	ListByAccrual(from, to time.Time, limit, offset int) ([]*entity.Expense, error)
	// SumByCategory totaliza por categoría los gastos imputados en [from, to].
	SumByCategory(from, to time.Time) (map[string]decimal.Decimal, error)
}
