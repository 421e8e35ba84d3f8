package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
	RoleCliente  = "cliente" // presente en el esquema; sin acceso al núcleo
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // admin, vendedor, cliente
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Customer extiende a un User con datos de cliente final. Se da de alta
// desde el mostrador para asociarlo a ventas; su usuario nace sin
// credenciales (no puede iniciar sesión).
type Customer struct {
	UserID    string
	FullName  string // viene de users en las lecturas
	DNI       string
	Phone     string
	CreatedAt time.Time
}
