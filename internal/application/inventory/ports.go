package inventory

import (
	"context"

	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento y su ajuste de
// stock se confirman juntos o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// KardexPDFGenerator renderiza el kardex (tarjeta de existencias) de un
// producto como PDF.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, product *entity.Product, movements []*entity.MovementDetail) ([]byte, error)
}
