package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. El stock se
// calcula agregando los lotes en SQL para no paginar productos en memoria.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas del dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesTotals devuelve el total facturado y la cantidad de tickets en [from, to).
func (r *AnalyticsRepo) SalesTotals(from, to time.Time) (decimal.Decimal, int, error) {
	var total decimal.Decimal
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0), COUNT(*) FROM sales WHERE created_at >= $1 AND created_at < $2`,
		from, to,
	).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return total, count, nil
}

const productStockQuery = `
	SELECT p.id, p.name, p.min_stock, COALESCE(SUM(b.qty_remaining), 0) AS stock
	FROM products p
	LEFT JOIN batches b ON b.product_id = p.id
	WHERE p.active
	GROUP BY p.id, p.name, p.min_stock`

// LowStockProducts productos activos con 0 < stock <= stock mínimo.
func (r *AnalyticsRepo) LowStockProducts() ([]*repository.ProductStock, error) {
	query := productStockQuery + `
	HAVING COALESCE(SUM(b.qty_remaining), 0) > 0 AND COALESCE(SUM(b.qty_remaining), 0) <= p.min_stock
	ORDER BY stock`
	return r.queryProductStock(query)
}

// OutOfStockProducts productos activos sin stock disponible.
func (r *AnalyticsRepo) OutOfStockProducts() ([]*repository.ProductStock, error) {
	query := productStockQuery + `
	HAVING COALESCE(SUM(b.qty_remaining), 0) = 0
	ORDER BY p.name`
	return r.queryProductStock(query)
}

func (r *AnalyticsRepo) queryProductStock(query string) ([]*repository.ProductStock, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("query product stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductStock
	for rows.Next() {
		var p entity.Product
		var stock decimal.Decimal
		if err := rows.Scan(&p.ID, &p.Name, &p.MinStock, &stock); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, &repository.ProductStock{Product: &p, Stock: stock})
	}
	return list, rows.Err()
}
