package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// CashEntryRepository define el puerto de persistencia del libro de caja.
type CashEntryRepository interface {
	Create(entry *entity.CashEntry) error
	// List ordena por created_at desc.
	List(ownerID string) ([]*entity.CashEntry, error)
}
