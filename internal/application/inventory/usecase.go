package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// MovementUseCase registra movimientos de inventario y consulta el historial.
// El registro es la única operación que muta stock_actual, siempre dentro de
// una transacción: el movimiento y el ajuste se confirman juntos.
type MovementUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	tx          TxRunner
	log         *logger.Logger
}

func NewMovementUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	tx TxRunner,
	log *logger.Logger,
) *MovementUseCase {
	return &MovementUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		tx:          tx,
		log:         log,
	}
}

// Register valida y registra un movimiento, ajustando el stock del producto
// según el tipo. Tipos desconocidos se registran con delta cero: quedan en el
// historial pero no tocan el stock. responsibleID viene del token; puede ser
// vacío si el movimiento se registra sin usuario asociado.
func (uc *MovementUseCase) Register(ctx context.Context, req dto.CreateMovementRequest, responsibleID string) (*dto.MovementResponse, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(req.Type) == "" || strings.TrimSpace(req.ProductID) == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movement := &entity.Movement{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Type:      strings.ToUpper(strings.TrimSpace(req.Type)),
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		movement.Date = *req.Date
	}
	if responsibleID != "" {
		movement.ResponsibleID = &responsibleID
	}

	delta := entity.DeltaFor(movement.Type, movement.Quantity)

	err = uc.tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return productRepo.AdjustStock(movement.ProductID, delta)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", movement.ID).
		Str("product_id", movement.ProductID).
		Str("type", movement.Type).
		Int64("delta", delta).
		Msg("movimiento registrado")

	detail, err := uc.movRepo.GetDetail(movement.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMovementResponse(detail)
	return &resp, nil
}

// History devuelve los movimientos de un producto, del más reciente al más
// antiguo.
func (uc *MovementUseCase) History(ctx context.Context, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	details, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovementResponse, 0, len(details))
	for _, d := range details {
		items = append(items, toMovementResponse(d))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(d *entity.MovementDetail) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:        d.ID,
		ProductID: d.ProductID,
		Type:      d.Type,
		Quantity:  d.Quantity,
		Date:      d.Date,
		Notes:     d.Notes,
		Product: dto.ProductRefResponse{
			ID:   d.Product.ID,
			Name: d.Product.Name,
			SKU:  d.Product.SKU,
		},
	}
	if d.Responsible != nil {
		resp.Responsible = &dto.UserRefResponse{
			ID:       d.Responsible.ID,
			Username: d.Responsible.Username,
		}
	}
	return resp
}
