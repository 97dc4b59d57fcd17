package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia del libro de compras.
// Ninguna invariante entre entradas se valida aquí; toda la consistencia
// libro-stock vive en el motor de inventario.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// GetByID devuelve nil si no existe una compra con ese ID para el dueño.
	GetByID(ownerID, id string) (*entity.Purchase, error)
	Delete(ownerID, id string) error
	// List ordena por purchase_date desc y created_at desc.
	List(ownerID string) ([]*entity.Purchase, error)
}
