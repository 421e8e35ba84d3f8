package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// UseCase gestiona los gastos operativos: egresos que no corresponden a
// compra de mercadería (servicios, alquiler, sueldos). La fecha de
// imputación permite asignar el gasto al período contable correcto aunque
// se cargue después.
type UseCase struct {
	categoryRepo repository.ExpenseCategoryRepository
	expenseRepo  repository.ExpenseRepository
}

// NewUseCase construye el caso de uso de finanzas.
func NewUseCase(categoryRepo repository.ExpenseCategoryRepository, expenseRepo repository.ExpenseRepository) *UseCase {
	return &UseCase{categoryRepo: categoryRepo, expenseRepo: expenseRepo}
}

// CreateCategory da de alta una categoría de gasto de nombre único.
func (uc *UseCase) CreateCategory(ctx context.Context, role, name string) (*entity.ExpenseCategory, error) {
	if !domain.HasPermission(role, domain.OpFinance) {
		return nil, domain.ErrForbidden
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.ExpenseCategory{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista categorías de gasto.
func (uc *UseCase) ListCategories(ctx context.Context, role string) ([]*entity.ExpenseCategory, error) {
	if !domain.HasPermission(role, domain.OpFinance) {
		return nil, domain.ErrForbidden
	}
	return uc.categoryRepo.List()
}

// CreateExpense registra un gasto. Si no viene fecha de imputación se usa hoy.
func (uc *UseCase) CreateExpense(ctx context.Context, userID, role string, in dto.CreateExpenseRequest) (*entity.Expense, error) {
	if !domain.HasPermission(role, domain.OpFinance) {
		return nil, domain.ErrForbidden
	}
	if in.CategoryID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	accrual := now
	if in.AccrualDate != nil {
		accrual = *in.AccrualDate
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Amount:      in.Amount,
		Description: in.Description,
		AccrualDate: accrual,
		CreatedAt:   now,
		CreatedBy:   userID,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses lista gastos imputados en [from, to].
func (uc *UseCase) ListExpenses(ctx context.Context, role string, from, to time.Time, limit, offset int) ([]*entity.Expense, error) {
	if !domain.HasPermission(role, domain.OpFinance) {
		return nil, domain.ErrForbidden
	}
	return uc.expenseRepo.ListByAccrual(from, to, limit, offset)
}

// MonthlySummary totaliza los gastos por categoría del mes dado.
func (uc *UseCase) MonthlySummary(ctx context.Context, role string, year int, month time.Month) (*dto.ExpenseSummaryResponse, error) {
	if !domain.HasPermission(role, domain.OpFinance) {
		return nil, domain.ErrForbidden
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	totals, err := uc.expenseRepo.SumByCategory(from, to)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, v := range totals {
		total = total.Add(v)
	}
	return &dto.ExpenseSummaryResponse{From: from, To: to, Totals: totals, Total: total}, nil
}
