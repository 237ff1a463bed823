package dto

import "time"

// CreateMovementRequest body para POST /api/v1/movimientos.
// El responsable no viene en el body: se toma del token autenticado.
// fecha es opcional; si falta, la asigna el servidor al confirmar la transacción.
type CreateMovementRequest struct {
	ProductID string     `json:"producto_id" validate:"required"`
	Type      string     `json:"tipo_movimiento" validate:"required,max=50"`
	Quantity  int64      `json:"cantidad" validate:"required,gt=0"`
	Date      *time.Time `json:"fecha"`
	Notes     *string    `json:"notas" validate:"omitempty,max=500"`
}

// ProductRefResponse resumen de producto dentro de un movimiento.
type ProductRefResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	SKU  *string `json:"codigo_sku,omitempty"`
}

// UserRefResponse resumen del usuario responsable dentro de un movimiento.
type UserRefResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// MovementResponse salida de un movimiento con sus resúmenes.
type MovementResponse struct {
	ID          string             `json:"id"`
	ProductID   string             `json:"producto_id"`
	Type        string             `json:"tipo_movimiento"`
	Quantity    int64              `json:"cantidad"`
	Date        time.Time          `json:"fecha"`
	Notes       *string            `json:"notas,omitempty"`
	Product     ProductRefResponse `json:"producto"`
	Responsible *UserRefResponse   `json:"responsable,omitempty"`
}

// MovementListResponse historial paginado de movimientos de un producto.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
