package repository

import (
	"github.com/shopspring/decimal"

	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	SetActive(id string, active bool) error
	List(onlyActive bool, limit, offset int) ([]*entity.Product, error)
	// UpdatePricesByBrand multiplica el precio de todos los productos activos
	// de la marca por el factor dado. Devuelve cuántos se actualizaron.
	UpdatePricesByBrand(brandID string, factor decimal.Decimal) (int64, error)
	Delete(id string) error
}
