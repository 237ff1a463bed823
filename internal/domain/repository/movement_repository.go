package repository

import "github.com/sclconsulting/inventario-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son historial append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetDetail(id string) (*entity.MovementDetail, error)
	// ListByProduct devuelve el historial de un producto, más reciente primero.
	ListByProduct(productID string, limit, offset int) ([]*entity.MovementDetail, error)
}
