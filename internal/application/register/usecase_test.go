package register

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// Fakes en memoria: una sola sesión viva por vez, como en la BD real.

type fakeRegisterStore struct {
	sessions  map[string]*entity.RegisterSession
	movements []*entity.Movement
}

func newFakeRegisterStore() *fakeRegisterStore {
	return &fakeRegisterStore{sessions: map[string]*entity.RegisterSession{}}
}

func (s *fakeRegisterStore) Create(sess *entity.RegisterSession) error {
	s.sessions[sess.ID] = sess
	return nil
}
func (s *fakeRegisterStore) GetByID(id string) (*entity.RegisterSession, error) {
	return s.sessions[id], nil
}
func (s *fakeRegisterStore) GetOpen() (*entity.RegisterSession, error) {
	for _, sess := range s.sessions {
		if sess.Open() {
			return sess, nil
		}
	}
	return nil, nil
}
func (s *fakeRegisterStore) GetOpenForUpdate() (*entity.RegisterSession, error) { return s.GetOpen() }
func (s *fakeRegisterStore) Close(sess *entity.RegisterSession) error {
	s.sessions[sess.ID] = sess
	return nil
}
func (s *fakeRegisterStore) List(int, int) ([]*entity.RegisterSession, error) { return nil, nil }

type fakeMovRepo struct{ s *fakeRegisterStore }

func (r fakeMovRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r fakeMovRepo) ListBySession(sessionID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRegisterTx struct{ s *fakeRegisterStore }

func (t fakeRegisterTx) RunRegister(ctx context.Context, fn func(
	sessionRepo repository.RegisterSessionRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(t.s, fakeMovRepo{t.s})
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func newUseCase() (*UseCase, *fakeRegisterStore) {
	store := newFakeRegisterStore()
	return NewUseCase(fakeRegisterTx{store}, store, fakeMovRepo{store}), store
}

func TestOpen_CreaSesion(t *testing.T) {
	uc, store := newUseCase()

	sess, err := uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100.00"))
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusOpen, sess.Status)
	assert.True(t, sess.OpeningBalance.Equal(d("100.00")))
	assert.Equal(t, "user-1", sess.OpenedBy)

	got, _ := store.GetOpen()
	require.NotNil(t, got)
	assert.Equal(t, sess.ID, got.ID)
}

func TestOpen_YaHayCajaAbierta(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Open(context.Background(), "user-1", entity.RoleAdmin, d("50"))
	require.NoError(t, err)

	_, err = uc.Open(context.Background(), "user-2", entity.RoleAdmin, d("80"))
	assert.ErrorIs(t, err, domain.ErrRegisterAlreadyOpen)
}

func TestOpen_SaldoNegativoInvalido(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Open(context.Background(), "user-1", entity.RoleAdmin, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpen_ClienteDenegado(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Open(context.Background(), "user-1", entity.RoleCliente, d("10"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPostManualMovement_SinCaja(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.PostManualMovement(context.Background(), "user-1", entity.RoleVendedor, entity.MovementKindManualIn, d("10"), "cambio")
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)
}

func TestPostManualMovement_Valido(t *testing.T) {
	uc, store := newUseCase()
	sess, err := uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100"))
	require.NoError(t, err)

	mov, err := uc.PostManualMovement(context.Background(), "user-1", entity.RoleVendedor, entity.MovementKindManualOut, d("15.50"), "pago proveedor")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, mov.SessionID)
	assert.Equal(t, entity.MovementKindManualOut, mov.Kind)
	assert.True(t, mov.Amount.Equal(d("15.50")), "el monto se guarda siempre positivo")
	require.Len(t, store.movements, 1)
}

func TestPostManualMovement_EntradaInvalida(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Open(context.Background(), "user-1", entity.RoleAdmin, d("100"))
	require.NoError(t, err)

	// SALE no se puede asentar a mano
	_, err = uc.PostManualMovement(context.Background(), "user-1", entity.RoleAdmin, entity.MovementKindSale, d("10"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PostManualMovement(context.Background(), "user-1", entity.RoleAdmin, entity.MovementKindManualIn, d("0"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.PostManualMovement(context.Background(), "user-1", entity.RoleAdmin, entity.MovementKindManualIn, d("-5"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Escenario de referencia: apertura 100, venta 20, declarado 120 -> desvío 0.
func TestClose_ArqueoExacto(t *testing.T) {
	uc, store := newUseCase()
	sess, err := uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100.00"))
	require.NoError(t, err)

	store.movements = append(store.movements, &entity.Movement{
		ID: "m1", SessionID: sess.ID, Kind: entity.MovementKindSale,
		Amount: d("20.00"), CreatedAt: time.Now(),
	})

	closed, err := uc.Close(context.Background(), "user-1", entity.RoleVendedor, d("120.00"), "")
	require.NoError(t, err)
	assert.Equal(t, entity.RegisterStatusClosed, closed.Status)
	require.NotNil(t, closed.ExpectedBalance)
	assert.True(t, closed.ExpectedBalance.Equal(d("120.00")))
	assert.True(t, closed.Variance.IsZero())
	assert.Equal(t, "user-1", closed.ClosedBy)
	assert.NotNil(t, closed.ClosedAt)
}

func TestClose_ConDesvio(t *testing.T) {
	uc, store := newUseCase()
	sess, err := uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100.00"))
	require.NoError(t, err)

	store.movements = append(store.movements,
		&entity.Movement{ID: "m1", SessionID: sess.ID, Kind: entity.MovementKindSale, Amount: d("35.50")},
		&entity.Movement{ID: "m2", SessionID: sess.ID, Kind: entity.MovementKindManualIn, Amount: d("10.00")},
		&entity.Movement{ID: "m3", SessionID: sess.ID, Kind: entity.MovementKindManualOut, Amount: d("15.50")},
	)

	// esperado = 100 + 35.50 + 10 - 15.50 = 130; declarado 128 -> faltante de 2
	closed, err := uc.Close(context.Background(), "user-1", entity.RoleVendedor, d("128.00"), "faltan 2 pesos")
	require.NoError(t, err)
	assert.True(t, closed.ExpectedBalance.Equal(d("130.00")))
	assert.True(t, closed.Variance.Equal(d("-2.00")))
	assert.Equal(t, "faltan 2 pesos", closed.Notes)
}

// El cierre es terminal: una vez CLOSED la caja no admite más operaciones.
func TestClose_EsTerminal(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100"))
	require.NoError(t, err)
	_, err = uc.Close(context.Background(), "user-1", entity.RoleVendedor, d("100"), "")
	require.NoError(t, err)

	_, err = uc.Close(context.Background(), "user-1", entity.RoleVendedor, d("100"), "")
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)

	_, err = uc.PostManualMovement(context.Background(), "user-1", entity.RoleVendedor, entity.MovementKindManualIn, d("5"), "")
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)

	// pero se puede abrir una sesión nueva
	_, err = uc.Open(context.Background(), "user-1", entity.RoleVendedor, d("100"))
	assert.NoError(t, err)
}

func TestCurrent_SinSesion(t *testing.T) {
	uc, _ := newUseCase()
	sess, err := uc.Current(context.Background(), entity.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
