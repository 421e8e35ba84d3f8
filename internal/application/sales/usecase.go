package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// RecordSaleUseCase registra ventas de forma transaccional: valida caja
// abierta, descuenta stock lote a lote en orden FEFO (First Expired, First
// Out) con bloqueo de filas, congela precios en las líneas y asienta un
// movimiento SALE en la sesión de caja. Todo o nada.
type RecordSaleUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.PaymentMethodRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, paymentRepo repository.PaymentMethodRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, paymentRepo: paymentRepo}
}

// SaleLineInput una línea solicitada: producto y cantidad.
type SaleLineInput struct {
	ProductID string
	Quantity  decimal.Decimal
}

// SaleInputDTO entrada para RecordSale.
type SaleInputDTO struct {
	UserID          string
	Role            string
	PaymentMethodID string
	CustomerID      string
	Discount        decimal.Decimal
	Lines           []SaleLineInput
}

// RecordSale valida la entrada, inicia una transacción y ejecuta la venta.
//
// Precondiciones dentro de la tx: existe una sesión de caja OPEN (si no,
// domain.ErrNoOpenRegister) y cada línea es satisfacible con el stock total
// de los lotes del producto (si no, domain.ErrInsufficientStock y rollback
// completo: ningún lote queda mutado, no se crea Venta ni Movimiento).
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, input SaleInputDTO) (*entity.Sale, error) {
	if !domain.HasPermission(input.Role, domain.OpRecordSale) {
		return nil, domain.ErrForbidden
	}
	if len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range input.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if input.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// El método de pago se valida fuera de la tx: es un catálogo estable.
	method, err := uc.paymentRepo.GetByID(input.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil || !method.Active {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var sale *entity.Sale

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		batchRepo repository.BatchRepository,
		saleRepo repository.SaleRepository,
		sessionRepo repository.RegisterSessionRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la sesión abierta: ventas, movimientos y cierre quedan
		// serializados contra la misma fila.
		session, err := sessionRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if session == nil {
			return domain.ErrNoOpenRegister
		}

		saleID := uuid.New().String()
		lines := make([]*entity.SaleLine, 0, len(input.Lines))
		subtotal := decimal.Zero

		for _, req := range input.Lines {
			product, err := productRepo.GetByID(req.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Active {
				return domain.ErrNotFound
			}

			// Lotes con stock, bloqueados y ordenados por vencimiento (FEFO).
			batches, err := batchRepo.ListAvailableForUpdate(req.ProductID)
			if err != nil {
				return err
			}
			available := decimal.Zero
			for _, b := range batches {
				available = available.Add(b.QtyRemaining)
			}
			if available.LessThan(req.Quantity) {
				return domain.ErrInsufficientStock
			}

			// Descuenta lote a lote acumulando el costo de compra consumido.
			pending := req.Quantity
			costAccum := decimal.Zero
			for _, b := range batches {
				if !pending.GreaterThan(decimal.Zero) {
					break
				}
				take := decimal.Min(pending, b.QtyRemaining)
				b.QtyRemaining = b.QtyRemaining.Sub(take)
				if err := batchRepo.UpdateRemaining(b.ID, b.QtyRemaining); err != nil {
					return err
				}
				costAccum = costAccum.Add(take.Mul(b.PurchasePrice))
				pending = pending.Sub(take)
			}

			lineSubtotal := req.Quantity.Mul(product.Price)
			lines = append(lines, &entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: product.ID,
				Quantity:  req.Quantity,
				UnitPrice: product.Price, // foto del precio vigente
				UnitCost:  costAccum.Div(req.Quantity),
				Subtotal:  lineSubtotal,
			})
			subtotal = subtotal.Add(lineSubtotal)
		}

		total := subtotal.Sub(input.Discount)
		if total.LessThan(decimal.Zero) {
			total = decimal.Zero
		}

		sale = &entity.Sale{
			ID:              saleID,
			SessionID:       session.ID,
			SellerID:        input.UserID,
			CustomerID:      input.CustomerID,
			PaymentMethodID: input.PaymentMethodID,
			Discount:        input.Discount,
			Total:           total,
			CreatedAt:       now,
			Lines:           lines,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		// Un movimiento SALE por el total de la venta en la sesión abierta.
		return movementRepo.Create(&entity.Movement{
			ID:          uuid.New().String(),
			SessionID:   session.ID,
			Kind:        entity.MovementKindSale,
			Amount:      total,
			Description: "venta",
			Reference:   saleID,
			CreatedAt:   now,
			CreatedBy:   input.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
