package register

import (
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// Closure es el resultado del arqueo de una sesión de caja.
type Closure struct {
	ExpectedBalance decimal.Decimal // apertura + ingresos - egresos
	DeclaredBalance decimal.Decimal // lo contado físicamente
	Variance        decimal.Decimal // declarado - esperado; positivo = sobrante
}

// ComputeClosure calcula el saldo esperado y el desvío de una sesión
// (servicio de dominio). Es un pliegue determinista sobre los movimientos:
//
//	esperado = apertura + SUM(SALE, MANUAL_IN) - SUM(MANUAL_OUT)
//	desvío   = declarado - esperado
//
// No tiene efectos secundarios: puede re-ejecutarse para auditoría.
func ComputeClosure(openingBalance decimal.Decimal, movements []*entity.Movement, declaredBalance decimal.Decimal) Closure {
	expected := openingBalance
	for _, m := range movements {
		switch m.Kind {
		case entity.MovementKindSale, entity.MovementKindManualIn:
			expected = expected.Add(m.Amount)
		case entity.MovementKindManualOut:
			expected = expected.Sub(m.Amount)
		}
	}
	return Closure{
		ExpectedBalance: expected,
		DeclaredBalance: declaredBalance,
		Variance:        declaredBalance.Sub(expected),
	}
}
