package sales

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
	"github.com/Misa55555/stockpro-api/internal/domain"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.UserID] = c
	return nil
}
func (r *fakeCustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	return r.customers[userID], nil
}
func (r *fakeCustomerRepo) GetByDNI(dni string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) Search(term string, limit int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(c.FullName), strings.ToLower(term)) ||
			strings.HasPrefix(c.DNI, term) || strings.HasPrefix(c.Phone, term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func newCustomerUC() (*CustomerUseCase, *fakeUserRepo, *fakeCustomerRepo) {
	userRepo := &fakeUserRepo{users: map[string]*entity.User{}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	return NewCustomerUseCase(userRepo, customerRepo), userRepo, customerRepo
}

func TestCreateCustomer_AltaRapida(t *testing.T) {
	uc, userRepo, customerRepo := newCustomerUC()

	out, err := uc.CreateCustomer(context.Background(), entity.RoleVendedor, dto.CreateCustomerRequest{
		FullName: "María Pérez",
		DNI:      "30111222",
		Email:    "maria@example.com",
		Phone:    "1155554444",
	})
	require.NoError(t, err)
	assert.Equal(t, "María Pérez", out.FullName)
	assert.Equal(t, "30111222", out.DNI)

	// el usuario asociado nace con rol cliente y sin credenciales
	user := userRepo.users[out.ID]
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleCliente, user.Role)
	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, customerRepo.customers[out.ID])
}

func TestCreateCustomer_DNIDuplicado(t *testing.T) {
	uc, userRepo, customerRepo := newCustomerUC()
	customerRepo.customers["u1"] = &entity.Customer{UserID: "u1", FullName: "Juan", DNI: "30111222"}

	_, err := uc.CreateCustomer(context.Background(), entity.RoleAdmin, dto.CreateCustomerRequest{
		FullName: "Otro Juan", DNI: "30111222", Email: "otro@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	// no queda ningún usuario huérfano
	assert.Empty(t, userRepo.users)
}

func TestCreateCustomer_Validaciones(t *testing.T) {
	uc, _, _ := newCustomerUC()

	_, err := uc.CreateCustomer(context.Background(), entity.RoleAdmin, dto.CreateCustomerRequest{
		FullName: "Sin DNI", Email: "a@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateCustomer(context.Background(), entity.RoleCliente, dto.CreateCustomerRequest{
		FullName: "Cliente", DNI: "1", Email: "c@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSearchCustomers(t *testing.T) {
	uc, _, customerRepo := newCustomerUC()
	customerRepo.customers["u1"] = &entity.Customer{UserID: "u1", FullName: "María Pérez", DNI: "30111222"}
	customerRepo.customers["u2"] = &entity.Customer{UserID: "u2", FullName: "Pedro Gómez", DNI: "28999000"}

	out, err := uc.SearchCustomers(context.Background(), entity.RoleVendedor, "301")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "María Pérez", out[0].FullName)

	out, err = uc.SearchCustomers(context.Background(), entity.RoleVendedor, "gómez")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "u2", out[0].ID)

	_, err = uc.SearchCustomers(context.Background(), entity.RoleCliente, "30")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
