package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = "id, owner_id, item_name, quantity, opening_quantity, price, unit, updated_at"

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Los incrementos/decrementos son un solo UPDATE condicional: la BD es quien
// arbitra las carreras entre operaciones concurrentes sobre el mismo artículo.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.OwnerID, &s.ItemName, &s.Quantity, &s.OpeningQuantity, &s.Price, &s.Unit, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get obtiene el agregado o nil si no existe.
func (r *StockRepo) Get(ownerID, itemName string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE owner_id = $1 AND item_name = $2`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// List devuelve el stock del dueño ordenado por nombre de artículo.
func (r *StockRepo) List(ownerID string) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE owner_id = $1 ORDER BY item_name`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.ItemName, &s.Quantity, &s.OpeningQuantity, &s.Price, &s.Unit, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// IncrementSet suma delta y sobreescribe precio y unidad en un solo statement,
// creando la fila si no existe (cantidad sembrada en delta).
func (r *StockRepo) IncrementSet(ownerID, itemName string, delta, price decimal.Decimal, unit string) (*entity.Stock, error) {
	query := `
		INSERT INTO stock (id, owner_id, item_name, quantity, opening_quantity, price, unit, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, now())
		ON CONFLICT (owner_id, item_name)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity,
		              price = EXCLUDED.price,
		              unit = EXCLUDED.unit,
		              updated_at = now()
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, uuid.New().String(), ownerID, itemName, delta, price, unit))
	if err != nil {
		return nil, fmt.Errorf("increment stock: %w", err)
	}
	return s, nil
}

// IncrementSeed suma delta; precio y unidad solo se siembran al insertar.
func (r *StockRepo) IncrementSeed(ownerID, itemName string, delta, seedPrice decimal.Decimal, seedUnit string) (*entity.Stock, error) {
	query := `
		INSERT INTO stock (id, owner_id, item_name, quantity, opening_quantity, price, unit, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, now())
		ON CONFLICT (owner_id, item_name)
		DO UPDATE SET quantity = stock.quantity + EXCLUDED.quantity,
		              updated_at = now()
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, uuid.New().String(), ownerID, itemName, delta, seedPrice, seedUnit))
	if err != nil {
		return nil, fmt.Errorf("increment stock (seed): %w", err)
	}
	return s, nil
}

// ConditionalDecrement resta qty solo si quantity >= qty (predicado en el mismo
// UPDATE: dos ventas concurrentes no pueden pasar ambas con stock insuficiente).
// Nil sin error cuando la condición falla o la fila no existe.
func (r *StockRepo) ConditionalDecrement(ownerID, itemName string, qty decimal.Decimal, unit string) (*entity.Stock, error) {
	query := `
		UPDATE stock
		SET quantity = quantity - $3, unit = $4, updated_at = now()
		WHERE owner_id = $1 AND item_name = $2 AND quantity >= $3
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, itemName, qty, unit))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("conditional decrement: %w", err)
	}
	return s, nil
}

// DecrementFloor resta qty con piso en 0. Nil sin error si la fila no existe.
func (r *StockRepo) DecrementFloor(ownerID, itemName string, qty decimal.Decimal) (*entity.Stock, error) {
	query := `
		UPDATE stock
		SET quantity = GREATEST(quantity - $3, 0), updated_at = now()
		WHERE owner_id = $1 AND item_name = $2
		RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, itemName, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("decrement floor: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de tx.
func (r *StockRepo) GetForUpdate(ownerID, itemName string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE owner_id = $1 AND item_name = $2 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, itemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// Save upsert completo del agregado (stock inicial incluido).
func (r *StockRepo) Save(stock *entity.Stock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock (id, owner_id, item_name, quantity, opening_quantity, price, unit, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (owner_id, item_name)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              opening_quantity = EXCLUDED.opening_quantity,
		              price = EXCLUDED.price,
		              unit = EXCLUDED.unit,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.OwnerID, stock.ItemName, stock.Quantity, stock.OpeningQuantity,
		stock.Price, stock.Unit, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	return nil
}

// Delete borra por ID o, si no hay coincidencia, por nombre de artículo.
// Devuelve la fila borrada o nil si no existe.
func (r *StockRepo) Delete(ownerID, idOrItemName string) (*entity.Stock, error) {
	if _, err := uuid.Parse(idOrItemName); err == nil {
		query := `DELETE FROM stock WHERE owner_id = $1 AND id = $2 RETURNING ` + stockColumns
		s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, idOrItemName))
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("delete stock by id: %w", err)
		}
	}
	query := `DELETE FROM stock WHERE owner_id = $1 AND item_name = $2 RETURNING ` + stockColumns
	s, err := scanStock(r.q.QueryRow(context.Background(), query, ownerID, idOrItemName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete stock by item: %w", err)
	}
	return s, nil
}
