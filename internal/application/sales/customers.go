package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/domain/repository"
)

// límite del autocompletado del mostrador
const customerSearchLimit = 10

// CustomerUseCase alta rápida y búsqueda de clientes desde el mostrador,
// para asociarlos a una venta.
type CustomerUseCase struct {
	userRepo     repository.UserRepository
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(userRepo repository.UserRepository, customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{userRepo: userRepo, customerRepo: customerRepo}
}

// CreateCustomer da de alta un cliente con su usuario asociado. El usuario
// nace con rol cliente y sin credenciales: no puede iniciar sesión. DNI
// único; devuelve ErrDuplicate si ya existe.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, role string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if !domain.HasPermission(role, domain.OpRecordSale) {
		return nil, domain.ErrForbidden
	}
	if in.FullName == "" || in.DNI == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.customerRepo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      entity.RoleCliente,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		UserID:    user.ID,
		FullName:  user.FullName,
		DNI:       in.DNI,
		Phone:     in.Phone,
		CreatedAt: now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// SearchCustomers autocompletado del mostrador: filtra por nombre parcial,
// DNI o teléfono y devuelve los primeros resultados.
func (uc *CustomerUseCase) SearchCustomers(ctx context.Context, role, term string) ([]*dto.CustomerResponse, error) {
	if !domain.HasPermission(role, domain.OpRecordSale) {
		return nil, domain.ErrForbidden
	}
	customers, err := uc.customerRepo.Search(term, customerSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:       c.UserID,
		FullName: c.FullName,
		DNI:      c.DNI,
		Phone:    c.Phone,
	}
}
