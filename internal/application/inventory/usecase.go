package inventory

import (
	"context"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// UseCase es el motor de consistencia de inventario: ejecuta cada mutación del
// libro (compra, venta, sus borrados, stock inicial) junto con la actualización
// del agregado Stock como una unidad lógica, con validación hacia adelante y
// compensación hacia atrás. Todas las operaciones están acotadas al dueño.
type UseCase struct {
	stockRepo    repository.StockRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	txRunner     TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		stockRepo:    stockRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		txRunner:     txRunner,
	}
}

// ListStock devuelve el stock del dueño ordenado por nombre de artículo.
func (uc *UseCase) ListStock(ctx context.Context, ownerID string) ([]*entity.Stock, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.List(ownerID)
}

// DeleteStockItem borra un agregado por ID o por nombre de artículo.
// No borra en cascada las compras/ventas que lo referencian: el historial queda.
func (uc *UseCase) DeleteStockItem(ctx context.Context, ownerID, idOrItemName string) (*entity.Stock, error) {
	if ownerID == "" || idOrItemName == "" {
		return nil, domain.ErrInvalidInput
	}
	deleted, err := uc.stockRepo.Delete(ownerID, idOrItemName)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrNotFound
	}
	return deleted, nil
}

// ListPurchases devuelve el libro de compras del dueño (más recientes primero).
func (uc *UseCase) ListPurchases(ctx context.Context, ownerID string) ([]*entity.Purchase, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.purchaseRepo.List(ownerID)
}

// ListSales devuelve el libro de ventas del dueño (más recientes primero).
func (uc *UseCase) ListSales(ctx context.Context, ownerID string) ([]*entity.Sale, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.saleRepo.List(ownerID)
}
