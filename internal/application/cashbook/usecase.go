package cashbook

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// UseCase registra y lista los movimientos de caja del dueño (efectivo/online).
// No participa en la consistencia del inventario: es un libro simple.
type UseCase struct {
	repo repository.CashEntryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CashEntryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Register guarda un movimiento de caja.
func (uc *UseCase) Register(ctx context.Context, ownerID, entryType string, amount decimal.Decimal) (*entity.CashEntry, error) {
	entryType = strings.TrimSpace(entryType)
	if ownerID == "" ||
		(entryType != entity.PaymentTypeCash && entryType != entity.PaymentTypeOnline) ||
		amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.CashEntry{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Type:      entryType,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List devuelve los movimientos del dueño, más recientes primero.
func (uc *UseCase) List(ctx context.Context, ownerID string) ([]*entity.CashEntry, error) {
	if ownerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.List(ownerID)
}
