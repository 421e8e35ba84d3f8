package entity

import "time"

// Category clasificación lógica de productos (ej. Bebidas, Lácteos).
type Category struct {
	ID            string
	Name          string // único
	VisibleOnline bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Brand marca comercial de un producto (ej. Coca-Cola, Bimbo).
type Brand struct {
	ID        string
	Name      string // único
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentMethod forma de pago aceptada por el comercio (Efectivo, Débito, QR…).
// Configurable por el administrador sin tocar código.
type PaymentMethod struct {
	ID        string
	Name      string // único
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
