package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pago aceptadas en ventas.
const (
	PaymentTypeCash   = "cash"
	PaymentTypeOnline = "online"
)

// Sale es una entrada del libro de ventas. Inmutable salvo por borrado,
// que siempre va emparejado con la compensación sobre el agregado Stock.
type Sale struct {
	ID                string
	OwnerID           string
	ItemName          string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Unit              string
	PaymentType       string // cash | online
	CustomerName      string
	CustomerPhone     string // normalizado: solo dígitos, 10 caracteres
	CustomerGstNumber string
	CustomerEmail     string
	CustomerAddress   string
	InvoiceNumber     string
	SaleDate          time.Time
	CreatedAt         time.Time
}
