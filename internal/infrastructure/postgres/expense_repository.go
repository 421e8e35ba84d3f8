package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)
var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseCategoryRepo implementación del puerto ExpenseCategoryRepository sobre PostgreSQL.
type ExpenseCategoryRepo struct {
	q Querier
}

// NewExpenseCategoryRepository construye el adaptador de persistencia para categorías de gasto.
func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

// Create persiste una nueva categoría de gasto. Nombre único.
func (r *ExpenseCategoryRepo) Create(category *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO expense_categories (id, name, created_at) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría de gasto por ID.
func (r *ExpenseCategoryRepo) GetByID(id string) (*entity.ExpenseCategory, error) {
	var c entity.ExpenseCategory
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM expense_categories WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense category: %w", err)
	}
	return &c, nil
}

// List lista categorías de gasto ordenadas por nombre.
func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM expense_categories ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría de gasto por ID.
func (r *ExpenseCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expense_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	return nil
}

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, category_id, amount, description, accrual_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.CategoryID, expense.Amount, expense.Description,
		expense.AccrualDate, expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(context.Background(),
		`SELECT id, category_id, amount, COALESCE(description, ''), accrual_date, created_at, created_by FROM expenses WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.CategoryID, &e.Amount, &e.Description, &e.AccrualDate, &e.CreatedAt, &e.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// ListByAccrual lista gastos con fecha de imputación en [from, to], más recientes primero.
func (r *ExpenseRepo) ListByAccrual(from, to time.Time, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, category_id, amount, COALESCE(description, ''), accrual_date, created_at, created_by
		FROM expenses WHERE accrual_date BETWEEN $1 AND $2
		ORDER BY accrual_date DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.CategoryID, &e.Amount, &e.Description, &e.AccrualDate, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumByCategory totaliza por categoría los gastos imputados en [from, to].
func (r *ExpenseRepo) SumByCategory(from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id, SUM(amount) FROM expenses WHERE accrual_date BETWEEN $1 AND $2 GROUP BY category_id`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}
	defer rows.Close()
	totals := map[string]decimal.Decimal{}
	for rows.Next() {
		var categoryID string
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("scan expense total: %w", err)
		}
		totals[categoryID] = total
	}
	return totals, rows.Err()
}
