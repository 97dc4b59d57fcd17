package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// StockRepository define el puerto del almacén de agregados de stock
// (fila única por owner + itemName). Los incrementos y decrementos son
// primitivas atómicas del almacén (un solo UPDATE condicional), nunca
// leer-modificar-escribir en la aplicación: esa disciplina sustituye a los
// locks cuando ventas concurrentes tocan el mismo artículo.
type StockRepository interface {
	// Get devuelve el agregado o nil si no existe.
	Get(ownerID, itemName string) (*entity.Stock, error)
	// List devuelve el stock del dueño ordenado por itemName.
	List(ownerID string) ([]*entity.Stock, error)

	// IncrementSet suma delta a la cantidad y sobreescribe price y unit,
	// creando la fila si no existe (cantidad sembrada en delta).
	IncrementSet(ownerID, itemName string, delta, price decimal.Decimal, unit string) (*entity.Stock, error)
	// IncrementSeed suma delta a la cantidad; price y unit solo se siembran
	// al insertar, nunca se sobreescriben en una fila existente.
	IncrementSeed(ownerID, itemName string, delta, seedPrice decimal.Decimal, seedUnit string) (*entity.Stock, error)
	// ConditionalDecrement resta qty solo si quantity >= qty, fijando unit.
	// Devuelve nil (sin error) cuando la condición no se cumple o la fila no existe.
	ConditionalDecrement(ownerID, itemName string, qty decimal.Decimal, unit string) (*entity.Stock, error)
	// DecrementFloor resta qty con piso en 0 (nunca negativa). Devuelve nil si
	// la fila no existe.
	DecrementFloor(ownerID, itemName string, qty decimal.Decimal) (*entity.Stock, error)

	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); solo dentro de transacción.
	// Devuelve nil si no existe.
	GetForUpdate(ownerID, itemName string) (*entity.Stock, error)
	// Save upsert completo del agregado (cantidad, cantidad inicial, precio, unidad).
	Save(stock *entity.Stock) error

	// Delete borra por ID o por itemName; devuelve la fila borrada o nil si no
	// existe. No borra en cascada las entradas del libro que la referencian.
	Delete(ownerID, idOrItemName string) (*entity.Stock, error)
}
