package register

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	domreg "github.com/Misa55555/stockpro-api/internal/domain/register"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// UseCase administra el ciclo de vida de la sesión de caja: apertura,
// movimientos manuales y cierre con arqueo. A lo sumo una sesión OPEN en
// todo el sistema; el cierre es terminal.
type UseCase struct {
	txRunner    TxRunner
	sessionRepo repository.RegisterSessionRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso de caja.
func NewUseCase(txRunner TxRunner, sessionRepo repository.RegisterSessionRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, sessionRepo: sessionRepo, movementRepo: movementRepo}
}

// Open abre una nueva sesión de caja con el saldo inicial indicado.
// Falla con domain.ErrRegisterAlreadyOpen si ya existe una sesión OPEN.
func (uc *UseCase) Open(ctx context.Context, userID, role string, openingBalance decimal.Decimal) (*entity.RegisterSession, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}
	if openingBalance.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	session := &entity.RegisterSession{
		ID:             uuid.New().String(),
		Status:         entity.RegisterStatusOpen,
		OpeningBalance: openingBalance,
		OpenedBy:       userID,
		OpenedAt:       time.Now(),
	}

	err := uc.txRunner.RunRegister(ctx, func(
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error {
		existing, err := sessionRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrRegisterAlreadyOpen
		}
		// El índice único parcial sobre status='OPEN' respalda el invariante
		// ante dos aperturas simultáneas que no vieron sesión abierta.
		return sessionRepo.Create(session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// PostManualMovement asienta un ingreso o egreso manual en la sesión abierta.
// Falla con domain.ErrNoOpenRegister si no hay sesión OPEN.
func (uc *UseCase) PostManualMovement(ctx context.Context, userID, role, kind string, amount decimal.Decimal, description string) (*entity.Movement, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}
	if kind != entity.MovementKindManualIn && kind != entity.MovementKindManualOut {
		return nil, domain.ErrInvalidInput
	}
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.Movement
	err := uc.txRunner.RunRegister(ctx, func(
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error {
		session, err := sessionRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNoOpenRegister
		}
		movement = &entity.Movement{
			ID:          uuid.New().String(),
			SessionID:   session.ID,
			Kind:        kind,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now(),
			CreatedBy:   userID,
		}
		return movementRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// Close cierra la sesión abierta: calcula el saldo esperado plegando los
// movimientos, persiste el desvío contra lo declarado y deja la sesión en
// CLOSED. Falla con domain.ErrNoOpenRegister si no hay sesión OPEN.
func (uc *UseCase) Close(ctx context.Context, userID, role string, declaredBalance decimal.Decimal, notes string) (*entity.RegisterSession, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}

	var closed *entity.RegisterSession
	err := uc.txRunner.RunRegister(ctx, func(
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error {
		session, err := sessionRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNoOpenRegister
		}
		movements, err := movementRepo.ListBySession(session.ID)
		if err != nil {
			return err
		}

		closure := domreg.ComputeClosure(session.OpeningBalance, movements, declaredBalance)
		now := time.Now()

		session.Status = entity.RegisterStatusClosed
		session.DeclaredBalance = &closure.DeclaredBalance
		session.ExpectedBalance = &closure.ExpectedBalance
		session.Variance = &closure.Variance
		session.Notes = notes
		session.ClosedBy = userID
		session.ClosedAt = &now

		if err := sessionRepo.Close(session); err != nil {
			return err
		}
		closed = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// Current devuelve la sesión OPEN o nil si la caja está cerrada.
func (uc *UseCase) Current(ctx context.Context, role string) (*entity.RegisterSession, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}
	return uc.sessionRepo.GetOpen()
}

// History lista sesiones pasadas (más recientes primero) con sus movimientos ya cerrados.
func (uc *UseCase) History(ctx context.Context, role string, limit, offset int) ([]*entity.RegisterSession, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}
	return uc.sessionRepo.List(limit, offset)
}

// Movements devuelve el libro de movimientos de una sesión (auditoría).
func (uc *UseCase) Movements(ctx context.Context, role, sessionID string) ([]*entity.Movement, error) {
	if !domain.HasPermission(role, domain.OpRegisterCash) {
		return nil, domain.ErrForbidden
	}
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return uc.movementRepo.ListBySession(sessionID)
}
