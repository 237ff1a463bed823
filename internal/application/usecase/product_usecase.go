package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía
// movimientos; aquí únicamente se fija el stock inicial al crear.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto: precio > 0, stocks >= 0, SKU único si está
// presente (NULL nunca colisiona) y las referencias deben existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.Price.GreaterThan(decimal.Zero) || in.Stock < 0 || in.StockMin < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	if err := uc.checkSKU(in.SKU, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Stock:        in.Stock,
		StockMin:     in.StockMin,
		SKU:          normalizeOptional(in.SKU),
		SerialNumber: normalizeOptional(in.SerialNumber),
		CategoryID:   in.CategoryID,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación y filtro opcional por categoría.
func (uc *ProductUseCase) List(limit, offset int, categoryID *string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica una actualización parcial re-validando unicidad y referencias
// igual que Create cuando esos campos cambian. Body vacío devuelve el
// producto sin cambios. El stock no se toca aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.StockMin != nil {
		if *in.StockMin < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMin = *in.StockMin
	}
	if in.SKU != nil {
		sku := normalizeOptional(in.SKU)
		if sku != nil && (product.SKU == nil || *sku != *product.SKU) {
			if err := uc.checkSKU(sku, id); err != nil {
				return nil, err
			}
		}
		product.SKU = sku
	}
	if in.SerialNumber != nil {
		product.SerialNumber = normalizeOptional(in.SerialNumber)
	}
	if in.CategoryID != nil || in.SupplierID != nil {
		if err := uc.checkRefs(in.CategoryID, in.SupplierID); err != nil {
			return nil, err
		}
		if in.CategoryID != nil {
			product.CategoryID = in.CategoryID
		}
		if in.SupplierID != nil {
			product.SupplierID = in.SupplierID
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y devuelve lo eliminado; nil si no existía.
// Los movimientos del producto se borran en cascada.
func (uc *ProductUseCase) Delete(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// checkRefs valida que categoría y proveedor referenciados existan.
func (uc *ProductUseCase) checkRefs(categoryID, supplierID *string) error {
	if categoryID != nil {
		category, err := uc.categoryRepo.GetByID(*categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
	}
	if supplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*supplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// checkSKU valida que el SKU no pertenezca ya a otro producto. SKU nulo o
// vacío nunca conflictúa.
func (uc *ProductUseCase) checkSKU(sku *string, selfID string) error {
	if sku == nil || *sku == "" {
		return nil
	}
	existing, err := uc.repo.GetBySKU(*sku)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrDuplicate
	}
	return nil
}

// normalizeOptional convierte cadena vacía en NULL para que la unicidad
// parcial de la BD no vea duplicados entre "sin valor".
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		StockMin:     p.StockMin,
		SKU:          p.SKU,
		SerialNumber: p.SerialNumber,
		CategoryID:   p.CategoryID,
		SupplierID:   p.SupplierID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
