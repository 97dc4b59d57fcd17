package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia del libro de ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// GetByID devuelve nil si no existe una venta con ese ID para el dueño.
	GetByID(ownerID, id string) (*entity.Sale, error)
	Delete(ownerID, id string) error
	// List ordena por sale_date desc y created_at desc.
	List(ownerID string) ([]*entity.Sale, error)
}
