package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `id, owner_id, item_name, quantity, price, unit,
	supplier_name, supplier_phone, supplier_gst_number, supplier_email, supplier_address,
	invoice_number, purchase_date, notes, created_at`

// PurchaseRepo implementación del libro de compras sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.OwnerID, purchase.ItemName, purchase.Quantity, purchase.Price, purchase.Unit,
		purchase.SupplierName, purchase.SupplierPhone, purchase.SupplierGstNumber,
		purchase.SupplierEmail, purchase.SupplierAddress,
		purchase.InvoiceNumber, purchase.PurchaseDate, purchase.Notes, purchase.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra del dueño; nil si no existe.
func (r *PurchaseRepo) GetByID(ownerID, id string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE owner_id = $1 AND id = $2`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&p.ID, &p.OwnerID, &p.ItemName, &p.Quantity, &p.Price, &p.Unit,
		&p.SupplierName, &p.SupplierPhone, &p.SupplierGstNumber, &p.SupplierEmail, &p.SupplierAddress,
		&p.InvoiceNumber, &p.PurchaseDate, &p.Notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// Delete borra una compra del dueño. ErrNotFound si no existía.
func (r *PurchaseRepo) Delete(ownerID, id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las compras del dueño, más recientes primero.
func (r *PurchaseRepo) List(ownerID string) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE owner_id = $1
		ORDER BY purchase_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.ItemName, &p.Quantity, &p.Price, &p.Unit,
			&p.SupplierName, &p.SupplierPhone, &p.SupplierGstNumber, &p.SupplierEmail, &p.SupplierAddress,
			&p.InvoiceNumber, &p.PurchaseDate, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
