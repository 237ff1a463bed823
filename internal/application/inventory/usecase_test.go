package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/application/inventory"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/domain/repository"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(limit, offset int, categoryID *string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

// AdjustStock es un incremento atómico, como el UPDATE relativo en BD.
func (r *fakeProductRepo) AdjustStock(productID string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return errors.New("producto no existe")
	}
	p.Stock += delta
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.Movement
	products  *fakeProductRepo
	users     map[string]string // id → username
	createErr error
}

func newFakeMovementRepo(products *fakeProductRepo) *fakeMovementRepo {
	return &fakeMovementRepo{products: products, users: map[string]string{}}
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	cp := *m
	if cp.Date.IsZero() {
		cp.Date = time.Now()
	}
	m.Date = cp.Date
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetDetail(id string) (*entity.MovementDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movements {
		if m.ID == id {
			return r.toDetail(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.MovementDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MovementDetail
	// inserción en orden cronológico: recorrer al revés = más reciente primero
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.toDetail(r.movements[i]))
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) toDetail(m *entity.Movement) *entity.MovementDetail {
	d := &entity.MovementDetail{Movement: *m}
	if p, ok := r.products.products[m.ProductID]; ok {
		d.Product = entity.ProductRef{ID: p.ID, Name: p.Name, SKU: p.SKU}
	}
	if m.ResponsibleID != nil {
		if username, ok := r.users[*m.ResponsibleID]; ok {
			d.Responsible = &entity.UserRef{ID: *m.ResponsibleID, Username: username}
		}
	}
	return d
}

// fakeTxRunner opera sobre los repos compartidos serializando las
// transacciones; si fn falla, restaura el estado previo (rollback).
type fakeTxRunner struct {
	txMu      sync.Mutex
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	prevProducts := map[string]*entity.Product{}
	r.products.mu.Lock()
	for id, p := range r.products.products {
		cp := *p
		prevProducts[id] = &cp
	}
	r.products.mu.Unlock()
	r.movements.mu.Lock()
	prevLen := len(r.movements.movements)
	r.movements.mu.Unlock()

	if err := fn(r.movements, r.products); err != nil {
		r.products.mu.Lock()
		r.products.products = prevProducts
		r.products.mu.Unlock()
		r.movements.mu.Lock()
		r.movements.movements = r.movements.movements[:prevLen]
		r.movements.mu.Unlock()
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func buildUseCase() (*inventory.MovementUseCase, *fakeProductRepo, *fakeMovementRepo, string) {
	products := newFakeProductRepo()
	movements := newFakeMovementRepo(products)
	tx := &fakeTxRunner{products: products, movements: movements}

	sku := "SKU-TEST-001"
	productID := uuid.NewString()
	_ = products.Create(&entity.Product{
		ID:    productID,
		Name:  "Teclado mecánico",
		Price: decimal.NewFromInt(120),
		SKU:   &sku,
	})

	uc := inventory.NewMovementUseCase(products, movements, tx, testLogger())
	return uc, products, movements, productID
}

func register(t *testing.T, uc *inventory.MovementUseCase, productID, tipo string, qty int64, responsibleID string) *dto.MovementResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		ProductID: productID,
		Type:      tipo,
		Quantity:  qty,
	}, responsibleID)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func stockOf(t *testing.T, products *fakeProductRepo, id string) int64 {
	t.Helper()
	p, err := products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: entrada, salida y un tipo desconocido. El desconocido
// queda en el historial pero no ajusta el stock.
func TestRegister_EntradaSalidaYTipoDesconocido(t *testing.T) {
	uc, products, _, productID := buildUseCase()

	register(t, uc, productID, entity.MovementEntrada, 10, "")
	assert.Equal(t, int64(10), stockOf(t, products, productID))

	register(t, uc, productID, entity.MovementSalida, 3, "")
	assert.Equal(t, int64(7), stockOf(t, products, productID))

	out := register(t, uc, productID, "TRANSFERENCIA", 5, "")
	assert.Equal(t, int64(7), stockOf(t, products, productID),
		"un tipo desconocido no ajusta el stock")
	assert.Equal(t, "TRANSFERENCIA", out.Type)

	history, err := uc.History(context.Background(), productID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, history.Items, 3, "los tres movimientos quedan en el historial")
}

func TestRegister_TipoEnMinusculasSeNormaliza(t *testing.T) {
	uc, products, _, productID := buildUseCase()

	out := register(t, uc, productID, "entrada", 4, "")
	assert.Equal(t, entity.MovementEntrada, out.Type)
	assert.Equal(t, int64(4), stockOf(t, products, productID))
}

func TestRegister_RespuestaIncluyeProductoYResponsable(t *testing.T) {
	uc, _, movements, productID := buildUseCase()
	userID := uuid.NewString()
	movements.users[userID] = "bodeguero"

	out := register(t, uc, productID, entity.MovementEntrada, 2, userID)

	assert.Equal(t, productID, out.Product.ID)
	assert.Equal(t, "Teclado mecánico", out.Product.Name)
	require.NotNil(t, out.Responsible)
	assert.Equal(t, "bodeguero", out.Responsible.Username)
	assert.False(t, out.Date.IsZero())
}

func TestRegister_SalidaPuedeDejarStockNegativo(t *testing.T) {
	uc, products, _, productID := buildUseCase()

	register(t, uc, productID, entity.MovementSalida, 5, "")
	assert.Equal(t, int64(-5), stockOf(t, products, productID),
		"el sistema registra la salida aunque no haya stock")
}

func TestRegister_CantidadInvalida(t *testing.T) {
	uc, _, _, productID := buildUseCase()

	for _, qty := range []int64{0, -3} {
		_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
			ProductID: productID,
			Type:      entity.MovementEntrada,
			Quantity:  qty,
		}, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d", qty)
	}
}

func TestRegister_TipoVacio(t *testing.T) {
	uc, _, _, productID := buildUseCase()

	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		ProductID: productID,
		Type:      "   ",
		Quantity:  1,
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		ProductID: uuid.NewString(),
		Type:      entity.MovementEntrada,
		Quantity:  1,
	}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el insert del movimiento falla, la transacción se revierte: ni el
// movimiento queda registrado ni el stock cambia.
func TestRegister_RollbackSiFallaElInsert(t *testing.T) {
	uc, products, movements, productID := buildUseCase()
	register(t, uc, productID, entity.MovementEntrada, 10, "")

	movements.createErr = errors.New("deadlock detectado")
	_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
		ProductID: productID,
		Type:      entity.MovementSalida,
		Quantity:  4,
	}, "")
	require.Error(t, err)
	movements.createErr = nil

	assert.Equal(t, int64(10), stockOf(t, products, productID), "el stock no cambia")
	history, err := uc.History(context.Background(), productID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, history.Items, 1, "el movimiento fallido no queda en el historial")
}

// Registros concurrentes sobre el mismo producto: el incremento relativo
// garantiza que ninguno se pierde.
func TestRegister_ConcurrenciaSinPerderActualizaciones(t *testing.T) {
	uc, products, _, productID := buildUseCase()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Register(context.Background(), dto.CreateMovementRequest{
				ProductID: productID,
				Type:      entity.MovementEntrada,
				Quantity:  1,
			}, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), stockOf(t, products, productID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_MasRecientePrimero(t *testing.T) {
	uc, _, _, productID := buildUseCase()

	register(t, uc, productID, entity.MovementEntrada, 1, "")
	register(t, uc, productID, entity.MovementEntrada, 2, "")
	register(t, uc, productID, entity.MovementEntrada, 3, "")

	out, err := uc.History(context.Background(), productID, 50, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, int64(3), out.Items[0].Quantity)
	assert.Equal(t, int64(1), out.Items[2].Quantity)
}

func TestHistory_Paginacion(t *testing.T) {
	uc, _, _, productID := buildUseCase()
	for i := 0; i < 5; i++ {
		register(t, uc, productID, entity.MovementEntrada, int64(i+1), "")
	}

	out, err := uc.History(context.Background(), productID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)
	assert.Equal(t, 2, out.Page.Offset)
}

func TestHistory_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := buildUseCase()

	_, err := uc.History(context.Background(), uuid.NewString(), 50, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
