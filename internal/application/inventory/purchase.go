package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
)

// PurchaseInput entrada para RecordPurchase. Las fechas llegan como string
// (YYYY-MM-DD o RFC 3339) y se validan aquí, antes de cualquier escritura.
type PurchaseInput struct {
	ItemName          string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Unit              string
	SupplierName      string
	SupplierPhone     string
	SupplierGstNumber string
	SupplierEmail     string
	SupplierAddress   string
	InvoiceNumber     string
	PurchaseDate      string
	Notes             string
}

// PurchaseResult compra creada más el agregado resultante.
type PurchaseResult struct {
	Entry *entity.Purchase
	Stock *entity.Stock
}

// StockResult agregado resultante de un borrado de compra/venta. Stock puede
// ser nil si el agregado no existía al compensar (caso borrado de compra).
type StockResult struct {
	Stock *entity.Stock
}

// RecordPurchase registra una compra y suma su cantidad al agregado Stock como
// unidad lógica: primero la entrada del libro, luego el incremento atómico del
// agregado (upsert). Si el incremento falla, la entrada se borra (compensación)
// y la operación se reporta como fallo de persistencia.
func (uc *UseCase) RecordPurchase(ctx context.Context, ownerID string, in PurchaseInput) (*PurchaseResult, error) {
	itemName := strings.TrimSpace(in.ItemName)
	unit := domaininv.NormalizeUnit(in.Unit)
	supplierName := strings.TrimSpace(in.SupplierName)
	supplierPhone := domaininv.NormalizePhone(in.SupplierPhone)
	supplierEmail := domaininv.NormalizeEmail(in.SupplierEmail)
	purchaseDate, dateOK := domaininv.ParseDate(in.PurchaseDate)

	if ownerID == "" || itemName == "" ||
		!in.Quantity.GreaterThan(decimal.Zero) ||
		in.Price.LessThan(decimal.Zero) ||
		!domaininv.IsValidUnit(unit) ||
		supplierName == "" ||
		!domaininv.IsValidPhone(supplierPhone) ||
		!domaininv.IsValidEmail(supplierEmail) ||
		!dateOK {
		return nil, domain.ErrInvalidInput
	}

	// La unidad del agregado es inmutable: una compra con otra unidad se rechaza
	// antes de tocar el almacén.
	existing, err := uc.stockRepo.Get(ownerID, itemName)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Unit != "" && existing.Unit != unit {
		return nil, fmt.Errorf("%s se registra en %s: %w", itemName, existing.Unit, domain.ErrUnitMismatch)
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		ItemName:          itemName,
		Quantity:          in.Quantity,
		Price:             in.Price,
		Unit:              unit,
		SupplierName:      supplierName,
		SupplierPhone:     supplierPhone,
		SupplierGstNumber: strings.TrimSpace(in.SupplierGstNumber),
		SupplierEmail:     supplierEmail,
		SupplierAddress:   strings.TrimSpace(in.SupplierAddress),
		InvoiceNumber:     strings.TrimSpace(in.InvoiceNumber),
		PurchaseDate:      purchaseDate,
		Notes:             strings.TrimSpace(in.Notes),
		CreatedAt:         now,
	}

	// Escritura durable #1: la entrada del libro. Si falla no hay nada que deshacer.
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	// Escritura durable #2: incremento atómico del agregado, sobreescribiendo
	// precio y unidad (upsert si no existe, cantidad sembrada en la compra).
	stock, err := uc.stockRepo.IncrementSet(ownerID, itemName, in.Quantity, in.Price, unit)
	if err != nil {
		if delErr := uc.purchaseRepo.Delete(ownerID, purchase.ID); delErr != nil {
			log.Error().Err(delErr).
				Str("owner_id", ownerID).
				Str("purchase_id", purchase.ID).
				Msg("compensación fallida: compra huérfana sin reflejar en stock")
			return nil, fmt.Errorf("%w: compra %s", domain.ErrInconsistentState, purchase.ID)
		}
		return nil, fmt.Errorf("%w: actualizar stock tras compra: %v", domain.ErrPersistence, err)
	}

	return &PurchaseResult{Entry: purchase, Stock: stock}, nil
}

// DeletePurchase borra una compra y resta su cantidad del agregado, con piso en
// 0: si las ventas ya consumieron lo comprado, la cantidad se recorta en vez de
// rechazar el borrado y dejar una entrada imposible de quitar. Si el
// borrado de la entrada falla tras el decremento, se re-incrementa (compensación).
func (uc *UseCase) DeletePurchase(ctx context.Context, ownerID, purchaseID string) (*StockResult, error) {
	if ownerID == "" || purchaseID == "" {
		return nil, domain.ErrInvalidInput
	}
	purchase, err := uc.purchaseRepo.GetByID(ownerID, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}

	// Escritura durable #1: decremento con piso en 0. Nil significa que el
	// agregado ya no existe; el borrado de la entrada procede igual.
	stock, err := uc.stockRepo.DecrementFloor(ownerID, purchase.ItemName, purchase.Quantity)
	if err != nil {
		return nil, err
	}

	// Escritura durable #2: quitar la entrada del libro.
	if err := uc.purchaseRepo.Delete(ownerID, purchase.ID); err != nil {
		if stock != nil {
			if _, compErr := uc.stockRepo.IncrementSeed(ownerID, purchase.ItemName, purchase.Quantity, purchase.Price, purchase.Unit); compErr != nil {
				log.Error().Err(compErr).
					Str("owner_id", ownerID).
					Str("purchase_id", purchase.ID).
					Msg("compensación fallida: stock decrementado con compra aún en el libro")
				return nil, fmt.Errorf("%w: compra %s", domain.ErrInconsistentState, purchase.ID)
			}
		}
		return nil, fmt.Errorf("%w: borrar compra: %v", domain.ErrPersistence, err)
	}

	return &StockResult{Stock: stock}, nil
}
