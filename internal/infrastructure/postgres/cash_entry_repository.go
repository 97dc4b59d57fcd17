package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.CashEntryRepository = (*CashEntryRepo)(nil)

// CashEntryRepo implementación del libro de caja sobre PostgreSQL.
type CashEntryRepo struct {
	q Querier
}

// NewCashEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashEntryRepository(q Querier) *CashEntryRepo {
	return &CashEntryRepo{q: q}
}

// Create persiste un movimiento de caja.
func (r *CashEntryRepo) Create(entry *entity.CashEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cash_entries (id, owner_id, type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.OwnerID, entry.Type, entry.Amount, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash entry: %w", err)
	}
	return nil
}

// List devuelve los movimientos del dueño, más recientes primero.
func (r *CashEntryRepo) List(ownerID string) ([]*entity.CashEntry, error) {
	query := `
		SELECT id, owner_id, type, amount, created_at
		FROM cash_entries WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cash entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashEntry
	for rows.Next() {
		var e entity.CashEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Type, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
