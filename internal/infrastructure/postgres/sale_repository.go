package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Create se usa siempre dentro de una transacción (ver TxRunner).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y todas sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, session_id, seller_id, customer_id, payment_method_id, discount, total, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SessionID, sale.SellerID, sale.CustomerID,
		sale.PaymentMethodID, sale.Discount, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, line := range sale.Lines {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO sale_lines (id, sale_id, product_id, quantity, unit_price, unit_cost, subtotal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, line.SaleID, line.ProductID, line.Quantity,
			line.UnitPrice, line.UnitCost, line.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT id, session_id, seller_id, COALESCE(customer_id, ''), payment_method_id, discount, total, created_at
		 FROM sales WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.SessionID, &s.SellerID, &s.CustomerID, &s.PaymentMethodID, &s.Discount, &s.Total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.linesBySale(s.ID)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

// ListBySession lista las ventas de una sesión de caja, con líneas.
func (r *SaleRepo) ListBySession(sessionID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, session_id, seller_id, COALESCE(customer_id, ''), payment_method_id, discount, total, created_at
		FROM sales WHERE session_id = $1 ORDER BY created_at`
	return r.querySales(query, sessionID)
}

// ListBetween lista ventas en [from, to) con paginación, más recientes primero.
func (r *SaleRepo) ListBetween(from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, session_id, seller_id, COALESCE(customer_id, ''), payment_method_id, discount, total, created_at
		FROM sales WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.querySales(query, from, to, limit, offset)
}

func (r *SaleRepo) querySales(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SessionID, &s.SellerID, &s.CustomerID, &s.PaymentMethodID, &s.Discount, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		lines, err := r.linesBySale(s.ID)
		if err != nil {
			return nil, err
		}
		s.Lines = lines
	}
	return list, nil
}

func (r *SaleRepo) linesBySale(saleID string) ([]*entity.SaleLine, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, product_id, quantity, unit_price, unit_cost, subtotal FROM sale_lines WHERE sale_id = $1`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sale lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.UnitCost, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}
