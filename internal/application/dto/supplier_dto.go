package dto

// CreateSupplierRequest entrada para crear un proveedor. Campos en español:
// contrato de la API original.
type CreateSupplierRequest struct {
	Name         string  `json:"nombre" validate:"required,min=2,max=150"`
	ContactName  *string `json:"contacto_nombre" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contacto_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contacto_telefono" validate:"omitempty,max=30"`
	Address      *string `json:"direccion" validate:"omitempty,max=500"`
}

// UpdateSupplierRequest entrada para actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name         *string `json:"nombre" validate:"omitempty,min=2,max=150"`
	ContactName  *string `json:"contacto_nombre" validate:"omitempty,max=100"`
	ContactEmail *string `json:"contacto_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contacto_telefono" validate:"omitempty,max=30"`
	Address      *string `json:"direccion" validate:"omitempty,max=500"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"nombre"`
	ContactName  *string `json:"contacto_nombre,omitempty"`
	ContactEmail *string `json:"contacto_email,omitempty"`
	ContactPhone *string `json:"contacto_telefono,omitempty"`
	Address      *string `json:"direccion,omitempty"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
