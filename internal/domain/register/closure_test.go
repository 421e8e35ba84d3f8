package register

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func mov(kind, amount string) *entity.Movement {
	return &entity.Movement{Kind: kind, Amount: d(amount)}
}

// Caja sin movimientos: el esperado es la apertura y el desvío lo declarado menos eso.
func TestComputeClosure_SinMovimientos(t *testing.T) {
	c := ComputeClosure(d("100.00"), nil, d("100.00"))
	assert.True(t, c.ExpectedBalance.Equal(d("100.00")))
	assert.True(t, c.Variance.IsZero())
}

// Ventas e ingresos suman, egresos restan.
func TestComputeClosure_MezclaDeMovimientos(t *testing.T) {
	movs := []*entity.Movement{
		mov(entity.MovementKindSale, "20.00"),
		mov(entity.MovementKindSale, "35.50"),
		mov(entity.MovementKindManualIn, "10.00"),
		mov(entity.MovementKindManualOut, "15.50"),
	}
	c := ComputeClosure(d("100.00"), movs, d("148.00"))
	// 100 + 20 + 35.50 + 10 - 15.50 = 150
	assert.True(t, c.ExpectedBalance.Equal(d("150.00")), "esperado %s", c.ExpectedBalance)
	assert.True(t, c.Variance.Equal(d("-2.00")), "faltante de 2.00, obtuvo %s", c.Variance)
}

// Desvío positivo = sobrante de caja.
func TestComputeClosure_Sobrante(t *testing.T) {
	movs := []*entity.Movement{mov(entity.MovementKindSale, "50.00")}
	c := ComputeClosure(d("0.00"), movs, d("55.00"))
	assert.True(t, c.Variance.Equal(d("5.00")))
}

// Función pura: dos ejecuciones con la misma entrada dan el mismo resultado.
func TestComputeClosure_Determinista(t *testing.T) {
	movs := []*entity.Movement{
		mov(entity.MovementKindSale, "12.34"),
		mov(entity.MovementKindManualOut, "4.00"),
	}
	a := ComputeClosure(d("80.00"), movs, d("90.00"))
	b := ComputeClosure(d("80.00"), movs, d("90.00"))
	assert.True(t, a.ExpectedBalance.Equal(b.ExpectedBalance))
	assert.True(t, a.Variance.Equal(b.Variance))
}

// Escenario de referencia: apertura 100, venta 20, arqueo 120 -> desvío cero.
func TestComputeClosure_EscenarioAperturaYVenta(t *testing.T) {
	movs := []*entity.Movement{mov(entity.MovementKindSale, "20.00")}
	c := ComputeClosure(d("100.00"), movs, d("120.00"))
	assert.True(t, c.ExpectedBalance.Equal(d("120.00")))
	assert.True(t, c.Variance.IsZero())
}
