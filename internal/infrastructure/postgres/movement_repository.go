package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Si Date viene en cero, la fecha la asigna
// la BD (now() dentro de la transacción) y se devuelve en la entidad.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos_inventario (id, producto_id, tipo_movimiento, cantidad, fecha, responsable_id, notas)
		VALUES ($1, $2, $3, $4, COALESCE($5, now()), $6, $7)
		RETURNING fecha`
	var date *time.Time
	if !movement.Date.IsZero() {
		date = &movement.Date
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		date, movement.ResponsibleID, movement.Notes,
	).Scan(&movement.Date)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementDetailQuery = `
	SELECT m.id, m.producto_id, m.tipo_movimiento, m.cantidad, m.fecha, m.responsable_id, m.notas,
	       p.id, p.name, p.codigo_sku,
	       u.id, u.username
	FROM movimientos_inventario m
	JOIN products p ON p.id = m.producto_id
	LEFT JOIN users u ON u.id = m.responsable_id`

// GetDetail obtiene un movimiento con los resúmenes de producto y responsable.
func (r *MovementRepo) GetDetail(id string) (*entity.MovementDetail, error) {
	row := r.q.QueryRow(context.Background(), movementDetailQuery+` WHERE m.id = $1`, id)
	d, err := scanMovementDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return d, nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementDetail, error) {
	query := movementDetailQuery + `
	WHERE m.producto_id = $1
	ORDER BY m.fecha DESC, m.id DESC
	LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		d, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanMovementDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var d entity.MovementDetail
	var userID, username *string
	err := row.Scan(
		&d.ID, &d.ProductID, &d.Type, &d.Quantity, &d.Date, &d.ResponsibleID, &d.Notes,
		&d.Product.ID, &d.Product.Name, &d.Product.SKU,
		&userID, &username,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil && username != nil {
		d.Responsible = &entity.UserRef{ID: *userID, Username: *username}
	}
	return &d, nil
}
