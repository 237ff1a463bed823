package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. stock_actual es el
// stock inicial; después de crear, el stock solo cambia vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=3,max=200"`
	Description  *string         `json:"description" validate:"omitempty,max=1000"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock_actual" validate:"min=0"`
	StockMin     int64           `json:"stock_minimo" validate:"min=0"`
	SKU          *string         `json:"codigo_sku" validate:"omitempty,max=100"`
	SerialNumber *string         `json:"numero_serie" validate:"omitempty,max=100"`
	CategoryID   *string         `json:"category_id"`
	SupplierID   *string         `json:"proveedor_id"`
}

// UpdateProductRequest entrada para actualización parcial (sin stock_actual:
// el stock solo se modifica vía movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=3,max=200"`
	Description  *string          `json:"description" validate:"omitempty,max=1000"`
	Price        *decimal.Decimal `json:"price"`
	StockMin     *int64           `json:"stock_minimo" validate:"omitempty,min=0"`
	SKU          *string          `json:"codigo_sku" validate:"omitempty,max=100"`
	SerialNumber *string          `json:"numero_serie" validate:"omitempty,max=100"`
	CategoryID   *string          `json:"category_id"`
	SupplierID   *string          `json:"proveedor_id"`
}

// ProductResponse salida de un producto. Las relaciones se exponen como
// identificadores explícitos, no como objetos anidados.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Stock        int64           `json:"stock_actual"`
	StockMin     int64           `json:"stock_minimo"`
	SKU          *string         `json:"codigo_sku,omitempty"`
	SerialNumber *string         `json:"numero_serie,omitempty"`
	CategoryID   *string         `json:"category_id,omitempty"`
	SupplierID   *string         `json:"proveedor_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
