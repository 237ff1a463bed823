package inventory

import (
	"context"

	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
)

// Hasta 500 movimientos entran en el kardex; más allá el PDF deja de ser útil
// como tarjeta de existencias imprimible.
const kardexMaxMovements = 500

// KardexUseCase genera la tarjeta kardex de un producto en PDF:
// datos del producto, stock actual y su historial de movimientos.
type KardexUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	generator   KardexPDFGenerator
}

func NewKardexUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	generator KardexPDFGenerator,
) *KardexUseCase {
	return &KardexUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		generator:   generator,
	}
}

// Generate devuelve el kardex del producto como bytes PDF.
func (uc *KardexUseCase) Generate(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movRepo.ListByProduct(productID, kardexMaxMovements, 0)
	if err != nil {
		return nil, err
	}

	return uc.generator.GenerateKardexPDF(ctx, product, movements)
}
