package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es una entrada del libro de compras. Inmutable salvo por borrado,
// que siempre va emparejado con la compensación sobre el agregado Stock.
type Purchase struct {
	ID                string
	OwnerID           string
	ItemName          string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Unit              string
	SupplierName      string
	SupplierPhone     string // normalizado: solo dígitos, 10 caracteres
	SupplierGstNumber string
	SupplierEmail     string
	SupplierAddress   string
	InvoiceNumber     string
	PurchaseDate      time.Time
	Notes             string
	CreatedAt         time.Time
}
