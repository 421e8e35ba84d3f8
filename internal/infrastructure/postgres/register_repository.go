package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

var _ repository.RegisterSessionRepository = (*RegisterSessionRepo)(nil)
var _ repository.MovementRepository = (*MovementRepo)(nil)

// RegisterSessionRepo implementación del puerto RegisterSessionRepository
// sobre PostgreSQL. El índice único parcial sobre status = 'OPEN' garantiza
// a lo sumo una sesión abierta aunque dos aperturas corran en paralelo.
type RegisterSessionRepo struct {
	q Querier
}

// NewRegisterSessionRepository construye el adaptador de persistencia para sesiones de caja.
func NewRegisterSessionRepository(q Querier) *RegisterSessionRepo {
	return &RegisterSessionRepo{q: q}
}

const sessionColumns = `id, status, opening_balance, opened_by, opened_at, declared_balance, expected_balance, variance, COALESCE(notes, ''), COALESCE(closed_by, ''), closed_at`

func scanSession(row pgx.Row) (*entity.RegisterSession, error) {
	var s entity.RegisterSession
	err := row.Scan(
		&s.ID, &s.Status, &s.OpeningBalance, &s.OpenedBy, &s.OpenedAt,
		&s.DeclaredBalance, &s.ExpectedBalance, &s.Variance,
		&s.Notes, &s.ClosedBy, &s.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva sesión abierta.
func (r *RegisterSessionRepo) Create(session *entity.RegisterSession) error {
	query := `
		INSERT INTO register_sessions (id, status, opening_balance, opened_by, opened_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.Status, session.OpeningBalance, session.OpenedBy, session.OpenedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// índice parcial: otra apertura ganó la carrera
			return domain.ErrRegisterAlreadyOpen
		}
		return fmt.Errorf("insert register session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *RegisterSessionRepo) GetByID(id string) (*entity.RegisterSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM register_sessions WHERE id = $1`
	s, err := scanSession(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get register session: %w", err)
	}
	return s, nil
}

// GetOpen devuelve la sesión OPEN o nil si no hay ninguna.
func (r *RegisterSessionRepo) GetOpen() (*entity.RegisterSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM register_sessions WHERE status = 'OPEN'`
	s, err := scanSession(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open register session: %w", err)
	}
	return s, nil
}

// GetOpenForUpdate devuelve la sesión OPEN bloqueando la fila. Ventas,
// movimientos manuales y cierre se serializan sobre este lock.
func (r *RegisterSessionRepo) GetOpenForUpdate() (*entity.RegisterSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM register_sessions WHERE status = 'OPEN' FOR UPDATE`
	s, err := scanSession(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock open register session: %w", err)
	}
	return s, nil
}

// Close persiste los campos de cierre; la sesión queda CLOSED.
func (r *RegisterSessionRepo) Close(session *entity.RegisterSession) error {
	query := `
		UPDATE register_sessions
		SET status = $2, declared_balance = $3, expected_balance = $4, variance = $5,
		    notes = NULLIF($6, ''), closed_by = $7, closed_at = $8
		WHERE id = $1 AND status = 'OPEN'`
	cmd, err := r.q.Exec(context.Background(), query,
		session.ID, session.Status, session.DeclaredBalance, session.ExpectedBalance,
		session.Variance, session.Notes, session.ClosedBy, session.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("close register session: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrRegisterClosed
	}
	return nil
}

// List lista sesiones con paginación, más recientes primero.
func (r *RegisterSessionRepo) List(limit, offset int) ([]*entity.RegisterSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM register_sessions ORDER BY opened_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list register sessions: %w", err)
	}
	defer rows.Close()
	var list []*entity.RegisterSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan register session: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// Los movimientos son inmutables: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos de caja.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create asienta un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO register_movements (id, session_id, kind, amount, description, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.SessionID, movement.Kind, movement.Amount,
		movement.Description, movement.Reference, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert register movement: %w", err)
	}
	return nil
}

// ListBySession devuelve el libro de movimientos de una sesión en orden cronológico.
func (r *MovementRepo) ListBySession(sessionID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, session_id, kind, amount, COALESCE(description, ''), COALESCE(reference, ''), created_at, created_by
		FROM register_movements WHERE session_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list register movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Kind, &m.Amount, &m.Description, &m.Reference, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan register movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
