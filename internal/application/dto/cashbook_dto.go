package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// RegisterCashEntryRequest body para POST /api/transactions.
type RegisterCashEntryRequest struct {
	Type   string          `json:"type" validate:"required"` // cash | online
	Amount decimal.Decimal `json:"amount"`
}

// CashEntryResponse salida de un movimiento de caja.
type CashEntryResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromCashEntry mapea la entidad a su respuesta.
func FromCashEntry(e *entity.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		ID:        e.ID,
		Type:      e.Type,
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
	}
}
