package sales

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El txRunner falso imita el rollback: si el callback
// falla, restaura las cantidades de los lotes y descarta ventas/movimientos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products  map[string]*entity.Product
	batches   map[string]*entity.Batch
	sales     []*entity.Sale
	movements []*entity.Movement
	session   *entity.RegisterSession
	methods   map[string]*entity.PaymentMethod
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		batches:  map[string]*entity.Batch{},
		methods:  map[string]*entity.PaymentMethod{},
	}
}

// ProductRepository
func (s *fakeStore) Create(p *entity.Product) error { s.products[p.ID] = p; return nil }
func (s *fakeStore) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}
func (s *fakeStore) GetByBarcode(string) (*entity.Product, error) { return nil, nil }
func (s *fakeStore) Update(*entity.Product) error                 { return nil }
func (s *fakeStore) SetActive(string, bool) error                 { return nil }
func (s *fakeStore) List(bool, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *fakeStore) UpdatePricesByBrand(string, decimal.Decimal) (int64, error) { return 0, nil }
func (s *fakeStore) Delete(string) error                                        { return nil }

type fakeBatchRepo struct{ s *fakeStore }

func (r fakeBatchRepo) Create(b *entity.Batch) error            { r.s.batches[b.ID] = b; return nil }
func (r fakeBatchRepo) GetByID(id string) (*entity.Batch, error) { return r.s.batches[id], nil }
func (r fakeBatchRepo) Update(*entity.Batch) error              { return nil }
func (r fakeBatchRepo) Delete(id string) error                  { delete(r.s.batches, id); return nil }
func (r fakeBatchRepo) ListByProduct(productID string) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if b.ProductID == productID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListAvailableForUpdate reproduce el ORDER BY expires_at ASC NULLS LAST.
func (r fakeBatchRepo) ListAvailableForUpdate(productID string) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if b.ProductID == productID && b.QtyRemaining.GreaterThan(decimal.Zero) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i], out[j]
		switch {
		case bi.ExpiresAt == nil && bj.ExpiresAt == nil:
			return bi.ID < bj.ID
		case bi.ExpiresAt == nil:
			return false
		case bj.ExpiresAt == nil:
			return true
		default:
			return bi.ExpiresAt.Before(*bj.ExpiresAt)
		}
	})
	return out, nil
}

func (r fakeBatchRepo) UpdateRemaining(id string, qty decimal.Decimal) error {
	r.s.batches[id].QtyRemaining = qty
	return nil
}
func (r fakeBatchRepo) SumRemaining(productID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, b := range r.s.batches {
		if b.ProductID == productID {
			sum = sum.Add(b.QtyRemaining)
		}
	}
	return sum, nil
}
func (r fakeBatchRepo) ListExpiringBetween(time.Time, time.Time) ([]*entity.Batch, error) {
	return nil, nil
}
func (r fakeBatchRepo) ListExpired(time.Time) ([]*entity.Batch, error) { return nil, nil }

type fakeSaleRepo struct{ s *fakeStore }

func (r fakeSaleRepo) Create(sale *entity.Sale) error { r.s.sales = append(r.s.sales, sale); return nil }
func (r fakeSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r fakeSaleRepo) ListBySession(string) ([]*entity.Sale, error) { return nil, nil }
func (r fakeSaleRepo) ListBetween(time.Time, time.Time, int, int) ([]*entity.Sale, error) {
	return nil, nil
}

type fakeSessionRepo struct{ s *fakeStore }

func (r fakeSessionRepo) Create(sess *entity.RegisterSession) error { r.s.session = sess; return nil }
func (r fakeSessionRepo) GetByID(string) (*entity.RegisterSession, error) {
	return r.s.session, nil
}
func (r fakeSessionRepo) GetOpen() (*entity.RegisterSession, error) {
	if r.s.session != nil && r.s.session.Open() {
		return r.s.session, nil
	}
	return nil, nil
}
func (r fakeSessionRepo) GetOpenForUpdate() (*entity.RegisterSession, error) { return r.GetOpen() }
func (r fakeSessionRepo) Close(*entity.RegisterSession) error                { return nil }
func (r fakeSessionRepo) List(int, int) ([]*entity.RegisterSession, error)   { return nil, nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r fakeMovementRepo) Create(m *entity.Movement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}
func (r fakeMovementRepo) ListBySession(sessionID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePaymentRepo struct{ s *fakeStore }

func (r fakePaymentRepo) Create(m *entity.PaymentMethod) error { r.s.methods[m.ID] = m; return nil }
func (r fakePaymentRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return r.s.methods[id], nil
}
func (r fakePaymentRepo) List(bool) ([]*entity.PaymentMethod, error) { return nil, nil }
func (r fakePaymentRepo) SetActive(string, bool) error               { return nil }

type fakeTxRunner struct{ s *fakeStore }

func (t fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
	saleRepo repository.SaleRepository,
	sessionRepo repository.RegisterSessionRepository,
	movementRepo repository.MovementRepository,
) error) error {
	// snapshot para simular rollback
	qtys := map[string]decimal.Decimal{}
	for id, b := range t.s.batches {
		qtys[id] = b.QtyRemaining
	}
	nSales, nMovs := len(t.s.sales), len(t.s.movements)

	err := fn(t.s, fakeBatchRepo{t.s}, fakeSaleRepo{t.s}, fakeSessionRepo{t.s}, fakeMovementRepo{t.s})
	if err != nil {
		for id, q := range qtys {
			t.s.batches[id].QtyRemaining = q
		}
		t.s.sales = t.s.sales[:nSales]
		t.s.movements = t.s.movements[:nMovs]
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func dateAt(offsetDays int) *time.Time {
	t := time.Now().AddDate(0, 0, offsetDays)
	return &t
}

func setup(t *testing.T, withOpenSession bool) (*RecordSaleUseCase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.methods["efectivo"] = &entity.PaymentMethod{ID: "efectivo", Name: "Efectivo", Active: true}
	if withOpenSession {
		store.session = &entity.RegisterSession{
			ID:             "caja-1",
			Status:         entity.RegisterStatusOpen,
			OpeningBalance: d("100.00"),
			OpenedAt:       time.Now(),
		}
	}
	uc := NewRecordSaleUseCase(fakeTxRunner{store}, fakePaymentRepo{store})
	return uc, store
}

func addProduct(s *fakeStore, id, price string) {
	s.products[id] = &entity.Product{ID: id, Name: id, Price: d(price), Active: true, MinStock: d("5")}
}

func addBatch(s *fakeStore, id, productID, qty, cost string, expiresAt *time.Time) {
	s.batches[id] = &entity.Batch{
		ID: id, ProductID: productID,
		QtyReceived: d(qty), QtyRemaining: d(qty),
		PurchasePrice: d(cost), ExpiresAt: expiresAt, ReceivedAt: time.Now(),
	}
}

func saleInput(lines ...SaleLineInput) SaleInputDTO {
	return SaleInputDTO{
		UserID:          "user-1",
		Role:            entity.RoleVendedor,
		PaymentMethodID: "efectivo",
		Lines:           lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: caja abierta con 100, venta de 2 unidades a 10.00
// contra un lote de 5 -> total 20.00, lote queda en 3, un movimiento SALE.
func TestRecordSale_VentaSimple(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addBatch(store, "l1", "p1", "5", "6.00", nil)

	sale, err := uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("2")}))
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.True(t, sale.Total.Equal(d("20.00")), "total %s", sale.Total)
	assert.True(t, store.batches["l1"].QtyRemaining.Equal(d("3")))

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementKindSale, mov.Kind)
	assert.True(t, mov.Amount.Equal(d("20.00")))
	assert.Equal(t, "caja-1", mov.SessionID)
	assert.Equal(t, sale.ID, mov.Reference)

	require.Len(t, sale.Lines, 1)
	assert.True(t, sale.Lines[0].UnitPrice.Equal(d("10.00")), "precio congelado")
	assert.True(t, sale.Lines[0].UnitCost.Equal(d("6.00")), "costo del lote consumido")
}

// Stock insuficiente: nada se persiste y los lotes no cambian.
func TestRecordSale_StockInsuficiente(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addBatch(store, "l1", "p1", "5", "6.00", nil)

	_, err := uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("6")}))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, store.batches["l1"].QtyRemaining.Equal(d("5")), "el lote no debe mutar")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

// Falla en la segunda línea: la primera (ya descontada) se revierte con el rollback.
func TestRecordSale_FallaParcialRevierteTodo(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addProduct(store, "p2", "4.00")
	addBatch(store, "l1", "p1", "5", "6.00", nil)
	addBatch(store, "l2", "p2", "1", "2.00", nil)

	_, err := uc.RecordSale(context.Background(), saleInput(
		SaleLineInput{ProductID: "p1", Quantity: d("2")},
		SaleLineInput{ProductID: "p2", Quantity: d("3")},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.batches["l1"].QtyRemaining.Equal(d("5")))
	assert.True(t, store.batches["l2"].QtyRemaining.Equal(d("1")))
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

// FEFO: se agota primero el lote que vence antes; los sin vencimiento, al final.
func TestRecordSale_OrdenFEFO(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addBatch(store, "tarde", "p1", "10", "5.00", dateAt(30))
	addBatch(store, "pronto", "p1", "4", "4.00", dateAt(3))
	addBatch(store, "sinVto", "p1", "10", "3.00", nil)

	_, err := uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("6")}))
	require.NoError(t, err)

	assert.True(t, store.batches["pronto"].QtyRemaining.IsZero(), "el que vence antes se agota primero")
	assert.True(t, store.batches["tarde"].QtyRemaining.Equal(d("8")))
	assert.True(t, store.batches["sinVto"].QtyRemaining.Equal(d("10")), "sin vencimiento va último")
}

// El costo unitario de la línea es el promedio ponderado de los lotes consumidos.
func TestRecordSale_CostoPromedioPonderado(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addBatch(store, "a", "p1", "2", "4.00", dateAt(1))
	addBatch(store, "b", "p1", "2", "6.00", dateAt(2))

	sale, err := uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("4")}))
	require.NoError(t, err)
	// (2*4 + 2*6) / 4 = 5
	assert.True(t, sale.Lines[0].UnitCost.Equal(d("5")), "costo %s", sale.Lines[0].UnitCost)
}

// Sin caja abierta la venta falla antes de tocar stock.
func TestRecordSale_SinCajaAbierta(t *testing.T) {
	uc, store := setup(t, false)
	addProduct(store, "p1", "10.00")
	addBatch(store, "l1", "p1", "5", "6.00", nil)

	_, err := uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("1")}))
	assert.ErrorIs(t, err, domain.ErrNoOpenRegister)
	assert.True(t, store.batches["l1"].QtyRemaining.Equal(d("5")))
	assert.Empty(t, store.sales)
}

// El rol cliente no puede vender.
func TestRecordSale_ClienteDenegado(t *testing.T) {
	uc, _ := setup(t, true)
	in := saleInput(SaleLineInput{ProductID: "p1", Quantity: d("1")})
	in.Role = entity.RoleCliente
	_, err := uc.RecordSale(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Descuento aplicado al total, con piso en cero.
func TestRecordSale_Descuento(t *testing.T) {
	uc, store := setup(t, true)
	addProduct(store, "p1", "10.00")
	addBatch(store, "l1", "p1", "5", "6.00", nil)

	in := saleInput(SaleLineInput{ProductID: "p1", Quantity: d("2")})
	in.Discount = d("5.00")
	sale, err := uc.RecordSale(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(d("15.00")))

	in2 := saleInput(SaleLineInput{ProductID: "p1", Quantity: d("1")})
	in2.Discount = d("50.00")
	sale2, err := uc.RecordSale(context.Background(), in2)
	require.NoError(t, err)
	assert.True(t, sale2.Total.IsZero(), "el total nunca es negativo")
}

// Entradas inválidas: sin líneas o cantidades no positivas.
func TestRecordSale_EntradaInvalida(t *testing.T) {
	uc, _ := setup(t, true)

	_, err := uc.RecordSale(context.Background(), saleInput())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordSale(context.Background(), saleInput(SaleLineInput{ProductID: "p1", Quantity: d("0")}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
