package entity

import "time"

// Supplier representa un proveedor de productos.
// Solo el nombre es obligatorio; los datos de contacto son opcionales.
type Supplier struct {
	ID           string
	Name         string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
	CreatedAt    time.Time
}
