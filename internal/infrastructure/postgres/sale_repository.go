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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, owner_id, item_name, quantity, price, unit, payment_type,
	customer_name, customer_phone, customer_gst_number, customer_email, customer_address,
	invoice_number, sale_date, created_at`

// SaleRepo implementación del libro de ventas sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.OwnerID, sale.ItemName, sale.Quantity, sale.Price, sale.Unit, sale.PaymentType,
		sale.CustomerName, sale.CustomerPhone, sale.CustomerGstNumber, sale.CustomerEmail, sale.CustomerAddress,
		sale.InvoiceNumber, sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		// Índice único (owner_id, invoice_number): el número de factura no se repite.
		if isUniqueViolation(err) {
			return fmt.Errorf("factura %s ya registrada: %w", sale.InvoiceNumber, domain.ErrInvalidOperation)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta del dueño; nil si no existe.
func (r *SaleRepo) GetByID(ownerID, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE owner_id = $1 AND id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&s.ID, &s.OwnerID, &s.ItemName, &s.Quantity, &s.Price, &s.Unit, &s.PaymentType,
		&s.CustomerName, &s.CustomerPhone, &s.CustomerGstNumber, &s.CustomerEmail, &s.CustomerAddress,
		&s.InvoiceNumber, &s.SaleDate, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Delete borra una venta del dueño. ErrNotFound si no existía.
func (r *SaleRepo) Delete(ownerID, id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las ventas del dueño, más recientes primero.
func (r *SaleRepo) List(ownerID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE owner_id = $1
		ORDER BY sale_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.ItemName, &s.Quantity, &s.Price, &s.Unit, &s.PaymentType,
			&s.CustomerName, &s.CustomerPhone, &s.CustomerGstNumber, &s.CustomerEmail, &s.CustomerAddress,
			&s.InvoiceNumber, &s.SaleDate, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
