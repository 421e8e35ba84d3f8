package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Misa55555/stockpro-api/internal/application/register"
	"github.com/Misa55555/stockpro-api/internal/application/sales"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and register.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ register.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del motor de ventas atados a la
// tx y hace Commit o Rollback. Los SELECT FOR UPDATE de sesión y lotes
// viven dentro de este scope.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	saleRepo repository.SaleRepository,
	sessionRepo repository.RegisterSessionRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	batchRepo := NewBatchRepository(tx)
	saleRepo := NewSaleRepository(tx)
	sessionRepo := NewRegisterSessionRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(productRepo, batchRepo, saleRepo, sessionRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegister inicia una transacción con los repos de caja (apertura,
// movimientos manuales y cierre).
func (r *TxRunner) RunRegister(ctx context.Context, fn func(
	sessionRepo repository.RegisterSessionRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sessionRepo := NewRegisterSessionRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(sessionRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
