package repository

import "github.com/sclconsulting/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// AdjustStock es el único camino de escritura del contador de stock:
// se expresa como incremento atómico a nivel de BD para que dos
// movimientos concurrentes sobre el mismo producto nunca pierdan un update.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int, categoryID *string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	AdjustStock(productID string, delta int64) error
	Delete(id string) error
}
