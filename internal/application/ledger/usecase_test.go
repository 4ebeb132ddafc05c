package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesphere/salesphere-api/internal/application/ledger"
	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base de datos. El fakeTxRunner toma un snapshot antes de
// cada transacción y lo restaura si la función devuelve error, para poder
// verificar que un fallo no deja escrituras parciales visibles.
type memStore struct {
	products   map[string]*entity.Product
	warehouses map[string]*entity.Warehouse
	stock      map[string]*entity.WarehouseProduct // clave: warehouseID|productID
	movements  []*entity.InventoryMovement
	sales      map[string]*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{
		products:   make(map[string]*entity.Product),
		warehouses: make(map[string]*entity.Warehouse),
		stock:      make(map[string]*entity.WarehouseProduct),
		sales:      make(map[string]*entity.Sale),
	}
}

func stockKey(warehouseID, productID string) string { return warehouseID + "|" + productID }

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.warehouses {
		cp := *v
		c.warehouses[k] = &cp
	}
	for k, v := range s.stock {
		cp := *v
		c.stock[k] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	for k, v := range s.sales {
		cp := *v
		c.sales[k] = &cp
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.warehouses = snap.warehouses
	s.stock = snap.stock
	s.movements = snap.movements
	s.sales = snap.sales
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, quantity int64) error {
	if p, ok := r.store.products[productID]; ok {
		p.StockQuantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) UpdateAvailability(productID, availability string) error {
	if p, ok := r.store.products[productID]; ok {
		p.Availability = availability
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) ListWithLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.IsLowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListExpiringBefore(date time.Time) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeWarehouseRepo struct{ store *memStore }

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.store.warehouses[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) List() ([]*entity.Warehouse, error) { return nil, nil }

type fakeStockRepo struct{ store *memStore }

func (r *fakeStockRepo) Get(warehouseID, productID string) (*entity.WarehouseProduct, error) {
	wp, ok := r.store.stock[stockKey(warehouseID, productID)]
	if !ok {
		return nil, nil
	}
	cp := *wp
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(warehouseID, productID string) (*entity.WarehouseProduct, error) {
	return r.Get(warehouseID, productID)
}

func (r *fakeStockRepo) Upsert(wp *entity.WarehouseProduct) error {
	cp := *wp
	r.store.stock[stockKey(wp.WarehouseID, wp.ProductID)] = &cp
	return nil
}

type fakeMovementRepo struct{ store *memStore }

func (r *fakeMovementRepo) Create(m *entity.InventoryMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.store.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// fakeTxRunner simula la transacción: snapshot antes, restore si falla.
type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.WarehouseProductRepository,
	movRepo repository.InventoryMovementRepository,
) error) error {
	snap := r.store.clone()
	err := fn(&fakeProductRepo{r.store}, &fakeStockRepo{r.store}, &fakeMovementRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.InventoryMovementRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.store.clone()
	err := fn(&fakeProductRepo{r.store}, &fakeMovementRepo{r.store}, &fakeSaleRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newLedger(store *memStore) *ledger.StockLedger {
	return ledger.NewStockLedger(
		&fakeTxRunner{store},
		&fakeProductRepo{store},
		&fakeWarehouseRepo{store},
	)
}

func seedProduct(store *memStore, id string, stock int64) {
	store.products[id] = &entity.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Producto " + id,
		StockQuantity: stock,
	}
}

func seedWarehouse(store *memStore, id string) {
	store.warehouses[id] = &entity.Warehouse{ID: id, Name: "Bodega " + id}
}

func seedStock(store *memStore, warehouseID, productID string, qty int64) {
	store.stock[stockKey(warehouseID, productID)] = &entity.WarehouseProduct{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Quantity:    qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_AplicaDeltaYRegistraMovimiento(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	l := newLedger(store)

	err := l.Adjust(context.Background(), "p1", -3, "merma")
	require.NoError(t, err)

	assert.Equal(t, int64(7), store.products["p1"].StockQuantity, "el stock debe reflejar el delta")
	require.Len(t, store.movements, 1, "debe registrarse un movimiento de auditoría")
	assert.Equal(t, int64(-3), store.movements[0].Quantity)
	assert.Equal(t, "merma", store.movements[0].Reason)
}

func TestAdjust_ResultadoNegativoSeRechazaSinEscribir(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 5)
	l := newLedger(store)

	err := l.Adjust(context.Background(), "p1", -8, "merma")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), store.products["p1"].StockQuantity, "el stock no debe cambiar")
	assert.Empty(t, store.movements, "no debe quedar movimiento de un ajuste rechazado")
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	l := newLedger(store)

	err := l.Adjust(context.Background(), "no-existe", 5, "ingreso")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_EntradaInvalida(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 5)
	l := newLedger(store)

	assert.ErrorIs(t, l.Adjust(context.Background(), "", 5, "ingreso"), domain.ErrInvalidInput, "producto vacío")
	assert.ErrorIs(t, l.Adjust(context.Background(), "p1", 0, "ingreso"), domain.ErrInvalidInput, "delta cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transfer
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_MueveCantidadEntreBodegas(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedWarehouse(store, "w1")
	seedWarehouse(store, "w2")
	seedStock(store, "w1", "p1", 10)
	l := newLedger(store)

	err := l.Transfer(context.Background(), "p1", "w1", "w2", 4)
	require.NoError(t, err)

	origin := store.stock[stockKey("w1", "p1")]
	dest := store.stock[stockKey("w2", "p1")]
	require.NotNil(t, dest, "la fila destino debe crearse perezosamente")
	assert.Equal(t, int64(6), origin.Quantity)
	assert.Equal(t, int64(4), dest.Quantity)
	assert.Equal(t, int64(10), origin.Quantity+dest.Quantity, "la suma entre bodegas se conserva")

	require.Len(t, store.movements, 2, "salida en origen y entrada en destino")
	assert.Equal(t, int64(-4), store.movements[0].Quantity)
	assert.Equal(t, "w1", store.movements[0].WarehouseID)
	assert.Equal(t, int64(4), store.movements[1].Quantity)
	assert.Equal(t, "w2", store.movements[1].WarehouseID)
	assert.Equal(t, entity.MovementReasonTransfer, store.movements[0].Reason)
}

func TestTransfer_StockInsuficienteNoDejaRastro(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedWarehouse(store, "w1")
	seedWarehouse(store, "w2")
	seedStock(store, "w1", "p1", 10)
	l := newLedger(store)

	err := l.Transfer(context.Background(), "p1", "w1", "w2", 20)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.stock[stockKey("w1", "p1")].Quantity, "el origen no debe cambiar")
	assert.Nil(t, store.stock[stockKey("w2", "p1")], "el destino no debe crearse")
	assert.Empty(t, store.movements)
}

func TestTransfer_OrigenSinFila(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedWarehouse(store, "w1")
	seedWarehouse(store, "w2")
	l := newLedger(store)

	err := l.Transfer(context.Background(), "p1", "w1", "w2", 1)
	require.ErrorIs(t, err, domain.ErrNotFound, "sin fila en origen no hay stock que mover")
}

func TestTransfer_ValidacionDeEntrada(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedWarehouse(store, "w1")
	l := newLedger(store)

	assert.ErrorIs(t, l.Transfer(context.Background(), "p1", "w1", "w1", 5), domain.ErrInvalidInput, "misma bodega")
	assert.ErrorIs(t, l.Transfer(context.Background(), "p1", "w1", "w2", 0), domain.ErrInvalidInput, "cantidad cero")
	assert.ErrorIs(t, l.Transfer(context.Background(), "p1", "w1", "w2", -2), domain.ErrInvalidInput, "cantidad negativa")
}

func TestTransfer_BodegaInexistente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedWarehouse(store, "w1")
	l := newLedger(store)

	err := l.Transfer(context.Background(), "p1", "w1", "w2", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeductForSale
// ──────────────────────────────────────────────────────────────────────────────

func TestDeductForSale_DescuentaTodosLosItems(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedProduct(store, "p2", 5)
	l := newLedger(store)

	err := l.DeductForSale(context.Background(), []ledger.SaleItemInput{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p2", Quantity: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), store.products["p1"].StockQuantity)
	assert.Equal(t, int64(0), store.products["p2"].StockQuantity, "vender hasta cero es válido")
	require.Len(t, store.movements, 2)
	for _, m := range store.movements {
		assert.Equal(t, entity.MovementReasonSale, m.Reason)
		assert.Negative(t, m.Quantity, "los descuentos por venta son salidas")
	}
}

func TestDeductForSale_LoteAtomico(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	seedProduct(store, "p2", 2)
	l := newLedger(store)

	err := l.DeductForSale(context.Background(), []ledger.SaleItemInput{
		{ProductID: "p1", Quantity: 4},
		{ProductID: "p2", Quantity: 3}, // insuficiente
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.products["p1"].StockQuantity, "ningún descuento parcial debe quedar visible")
	assert.Equal(t, int64(2), store.products["p2"].StockQuantity)
	assert.Empty(t, store.movements)
}

func TestDeductForSale_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	l := newLedger(store)

	err := l.DeductForSale(context.Background(), []ledger.SaleItemInput{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "fantasma", Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.products["p1"].StockQuantity)
}

func TestDeductForSale_ValidacionDeItems(t *testing.T) {
	store := newMemStore()
	l := newLedger(store)

	assert.ErrorIs(t, l.DeductForSale(context.Background(), nil), domain.ErrInvalidInput, "lote vacío")
	assert.ErrorIs(t, l.DeductForSale(context.Background(), []ledger.SaleItemInput{
		{ProductID: "p1", Quantity: 0},
	}), domain.ErrInvalidInput, "cantidad cero")
	assert.ErrorIs(t, l.DeductForSale(context.Background(), []ledger.SaleItemInput{
		{ProductID: "", Quantity: 2},
	}), domain.ErrInvalidInput, "producto vacío")
}
