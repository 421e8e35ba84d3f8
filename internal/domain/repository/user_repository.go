package repository

import "github.com/Misa55555/stockpro-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

// CustomerRepository puerto de persistencia para clientes finales.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByUserID(userID string) (*entity.Customer, error)
	GetByDNI(dni string) (*entity.Customer, error)
	Search(term string, limit int) ([]*entity.Customer, error)
}
