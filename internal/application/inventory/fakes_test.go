package inventory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia. Reproducen la semántica
// atómica de los adaptadores PostgreSQL (cada método corre bajo el lock del
// fake, igual que un statement corre atómico en la BD) y permiten inyectar
// fallos para ejercitar la compensación.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu    sync.Mutex
	rows  map[string]*entity.Stock // clave owner + "\x00" + itemName
	nexID int

	failIncrementSet  error
	failIncrementSeed error
	failDecrement     error
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: map[string]*entity.Stock{}}
}

func stockKey(ownerID, itemName string) string { return ownerID + "\x00" + itemName }

func copyStock(s *entity.Stock) *entity.Stock {
	c := *s
	return &c
}

func (r *fakeStockRepo) Get(ownerID, itemName string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[stockKey(ownerID, itemName)]
	if !ok {
		return nil, nil
	}
	return copyStock(s), nil
}

func (r *fakeStockRepo) List(ownerID string) ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Stock
	for _, s := range r.rows {
		if s.OwnerID == ownerID {
			out = append(out, copyStock(s))
		}
	}
	return out, nil
}

func (r *fakeStockRepo) newID() string {
	r.nexID++
	return "stock-" + strconv.Itoa(r.nexID)
}

func (r *fakeStockRepo) IncrementSet(ownerID, itemName string, delta, price decimal.Decimal, unit string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIncrementSet != nil {
		return nil, r.failIncrementSet
	}
	key := stockKey(ownerID, itemName)
	s, ok := r.rows[key]
	if !ok {
		s = &entity.Stock{ID: r.newID(), OwnerID: ownerID, ItemName: itemName, Quantity: delta, Price: price, Unit: unit, UpdatedAt: time.Now()}
		r.rows[key] = s
		return copyStock(s), nil
	}
	s.Quantity = s.Quantity.Add(delta)
	s.Price = price
	s.Unit = unit
	s.UpdatedAt = time.Now()
	return copyStock(s), nil
}

func (r *fakeStockRepo) IncrementSeed(ownerID, itemName string, delta, seedPrice decimal.Decimal, seedUnit string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIncrementSeed != nil {
		return nil, r.failIncrementSeed
	}
	key := stockKey(ownerID, itemName)
	s, ok := r.rows[key]
	if !ok {
		s = &entity.Stock{ID: r.newID(), OwnerID: ownerID, ItemName: itemName, Quantity: delta, Price: seedPrice, Unit: seedUnit, UpdatedAt: time.Now()}
		r.rows[key] = s
		return copyStock(s), nil
	}
	s.Quantity = s.Quantity.Add(delta)
	s.UpdatedAt = time.Now()
	return copyStock(s), nil
}

func (r *fakeStockRepo) ConditionalDecrement(ownerID, itemName string, qty decimal.Decimal, unit string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDecrement != nil {
		return nil, r.failDecrement
	}
	s, ok := r.rows[stockKey(ownerID, itemName)]
	if !ok || s.Quantity.LessThan(qty) {
		return nil, nil
	}
	s.Quantity = s.Quantity.Sub(qty)
	s.Unit = unit
	s.UpdatedAt = time.Now()
	return copyStock(s), nil
}

func (r *fakeStockRepo) DecrementFloor(ownerID, itemName string, qty decimal.Decimal) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDecrement != nil {
		return nil, r.failDecrement
	}
	s, ok := r.rows[stockKey(ownerID, itemName)]
	if !ok {
		return nil, nil
	}
	s.Quantity = s.Quantity.Sub(qty)
	if s.Quantity.LessThan(decimal.Zero) {
		s.Quantity = decimal.Zero
	}
	s.UpdatedAt = time.Now()
	return copyStock(s), nil
}

func (r *fakeStockRepo) GetForUpdate(ownerID, itemName string) (*entity.Stock, error) {
	return r.Get(ownerID, itemName)
}

func (r *fakeStockRepo) Save(stock *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stock.ID == "" {
		stock.ID = r.newID()
	}
	r.rows[stockKey(stock.OwnerID, stock.ItemName)] = copyStock(stock)
	return nil
}

func (r *fakeStockRepo) Delete(ownerID, idOrItemName string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, s := range r.rows {
		if s.OwnerID == ownerID && (s.ID == idOrItemName || s.ItemName == idOrItemName) {
			delete(r.rows, key)
			return copyStock(s), nil
		}
	}
	return nil, nil
}

type fakePurchaseRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Purchase

	failCreate error
	failDelete error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{rows: map[string]*entity.Purchase{}}
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	c := *p
	r.rows[p.ID] = &c
	return nil
}

func (r *fakePurchaseRepo) GetByID(ownerID, id string) (*entity.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakePurchaseRepo) Delete(ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDelete != nil {
		return r.failDelete
	}
	p, ok := r.rows[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakePurchaseRepo) List(ownerID string) ([]*entity.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Purchase
	for _, p := range r.rows {
		if p.OwnerID == ownerID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeSaleRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Sale

	failCreate error
	failDelete error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{rows: map[string]*entity.Sale{}}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	c := *s
	r.rows[s.ID] = &c
	return nil
}

func (r *fakeSaleRepo) GetByID(ownerID, id string) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok || s.OwnerID != ownerID {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *fakeSaleRepo) Delete(ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failDelete != nil {
		return r.failDelete
	}
	s, ok := r.rows[id]
	if !ok || s.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeSaleRepo) List(ownerID string) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.rows {
		if s.OwnerID == ownerID {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente: el fake de stock ya serializa
// cada método con su mutex.
type fakeTxRunner struct {
	stockRepo repository.StockRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error {
	return fn(r.stockRepo)
}

// newTestUseCase arma el motor con fakes y devuelve también los fakes para
// inyectar fallos o inspeccionar estado.
func newTestUseCase() (*UseCase, *fakeStockRepo, *fakePurchaseRepo, *fakeSaleRepo) {
	stockRepo := newFakeStockRepo()
	purchaseRepo := newFakePurchaseRepo()
	saleRepo := newFakeSaleRepo()
	uc := NewUseCase(stockRepo, purchaseRepo, saleRepo, &fakeTxRunner{stockRepo: stockRepo})
	return uc, stockRepo, purchaseRepo, saleRepo
}
