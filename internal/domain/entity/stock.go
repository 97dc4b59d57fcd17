package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el agregado de stock actual de un artículo para un dueño
// (fila única por owner_id + item_name). Es la fuente de verdad de "cuánto queda";
// las entradas del libro (Purchase/Sale) son los hechos históricos que lo mueven.
//
// Invariantes: Quantity nunca es negativa; Unit es consistente entre todas las
// compras/ventas del mismo artículo; OpeningQuantity es un total declarado a mano,
// no derivado del libro.
type Stock struct {
	ID              string
	OwnerID         string
	ItemName        string
	Quantity        decimal.Decimal
	OpeningQuantity decimal.Decimal
	Price           decimal.Decimal // último precio de compra conocido (las ventas no lo tocan)
	Unit            string
	UpdatedAt       time.Time
}
