package repository

import "github.com/Misa55555/stockpro-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List(onlyActive bool) ([]*entity.Category, error)
	Update(category *entity.Category) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

// BrandRepository puerto de persistencia para marcas.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	List(onlyActive bool) ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

// PaymentMethodRepository puerto de persistencia para métodos de pago.
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	List(onlyActive bool) ([]*entity.PaymentMethod, error)
	SetActive(id string, active bool) error
}
