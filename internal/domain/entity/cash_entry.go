package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntry registra un movimiento de caja del dueño (efectivo u online).
type CashEntry struct {
	ID        string
	OwnerID   string
	Type      string // cash | online
	Amount    decimal.Decimal
	CreatedAt time.Time
}
