package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador de persistencia para lotes.
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, product_id, qty_received, qty_remaining, purchase_price, expires_at, received_at`

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(&b.ID, &b.ProductID, &b.QtyReceived, &b.QtyRemaining, &b.PurchasePrice, &b.ExpiresAt, &b.ReceivedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un nuevo lote.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, product_id, qty_received, qty_remaining, purchase_price, expires_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.QtyReceived, batch.QtyRemaining,
		batch.PurchasePrice, batch.ExpiresAt, batch.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// Update actualiza cantidades, costo y vencimiento de un lote (corrección administrativa).
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches
		SET qty_received = $2, qty_remaining = $3, purchase_price = $4, expires_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.QtyReceived, batch.QtyRemaining, batch.PurchasePrice, batch.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *BatchRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	return nil
}

// ListByProduct lista todos los lotes de un producto, los más próximos a vencer primero.
func (r *BatchRepo) ListByProduct(productID string) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE product_id = $1 ORDER BY expires_at ASC NULLS LAST, received_at`
	return r.queryBatches(query, productID)
}

// ListAvailableForUpdate devuelve los lotes con stock de un producto en orden
// FEFO (vence antes primero, sin vencimiento al final) bloqueando las filas.
// Dos ventas concurrentes del mismo producto se serializan acá.
func (r *BatchRepo) ListAvailableForUpdate(productID string) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE product_id = $1 AND qty_remaining > 0
		ORDER BY expires_at ASC NULLS LAST, received_at
		FOR UPDATE`
	return r.queryBatches(query, productID)
}

// UpdateRemaining fija la cantidad restante de un lote.
func (r *BatchRepo) UpdateRemaining(id string, qtyRemaining decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE batches SET qty_remaining = $2 WHERE id = $1`,
		id, qtyRemaining,
	)
	if err != nil {
		return fmt.Errorf("update batch remaining: %w", err)
	}
	return nil
}

// SumRemaining suma la cantidad restante de todos los lotes del producto.
func (r *BatchRepo) SumRemaining(productID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(qty_remaining), 0) FROM batches WHERE product_id = $1`,
		productID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum batch remaining: %w", err)
	}
	return sum, nil
}

// ListExpiringBetween devuelve lotes con stock cuyo vencimiento cae en [from, to].
func (r *BatchRepo) ListExpiringBetween(from, to time.Time) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE qty_remaining > 0 AND expires_at BETWEEN $1 AND $2
		ORDER BY expires_at`
	return r.queryBatches(query, from, to)
}

// ListExpired devuelve lotes con stock ya vencidos respecto de asOf.
func (r *BatchRepo) ListExpired(asOf time.Time) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches
		WHERE qty_remaining > 0 AND expires_at < $1
		ORDER BY expires_at`
	return r.queryBatches(query, asOf)
}

func (r *BatchRepo) queryBatches(query string, args ...any) ([]*entity.Batch, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
