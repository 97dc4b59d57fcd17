package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// OpeningInput entrada para SetOpeningStock. Price es obligatorio solo cuando
// el artículo aún no existe; Unit vacía difiere a la unidad registrada.
type OpeningInput struct {
	ItemName        string
	OpeningQuantity decimal.Decimal
	Unit            string
	Price           *decimal.Decimal
}

// SetOpeningStock declara la cantidad inicial de un artículo. A diferencia del
// resto del motor, esta operación calcula un delta a partir del agregado
// existente (leer-calcular-escribir), así que corre en una transacción con la
// fila bloqueada (SELECT FOR UPDATE): dos declaraciones concurrentes sobre el
// mismo artículo se serializan en el almacén.
//
// Sobre un agregado existente: delta = nuevaInicial - inicialActual y la
// cantidad disponible se mueve en delta. Si eso la dejaría negativa (ya se
// vendió más de lo que la nueva inicial permite) la operación se rechaza.
func (uc *UseCase) SetOpeningStock(ctx context.Context, ownerID string, in OpeningInput) (*entity.Stock, error) {
	itemName := strings.TrimSpace(in.ItemName)
	unit := domaininv.NormalizeUnit(in.Unit)

	if ownerID == "" || itemName == "" ||
		in.OpeningQuantity.LessThan(decimal.Zero) ||
		(unit != "" && !domaininv.IsValidUnit(unit)) ||
		(in.Price != nil && in.Price.LessThan(decimal.Zero)) {
		return nil, domain.ErrInvalidInput
	}

	var result *entity.Stock
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		existing, err := stockRepo.GetForUpdate(ownerID, itemName)
		if err != nil {
			return err
		}

		now := time.Now()
		if existing == nil {
			// Primera declaración: crea el agregado. El precio es obligatorio
			// porque no hay compra previa de la que heredarlo.
			if in.Price == nil {
				return domain.ErrInvalidInput
			}
			if unit == "" {
				unit = domaininv.DefaultUnit
			}
			stock := &entity.Stock{
				ID:              uuid.New().String(),
				OwnerID:         ownerID,
				ItemName:        itemName,
				Quantity:        in.OpeningQuantity,
				OpeningQuantity: in.OpeningQuantity,
				Price:           *in.Price,
				Unit:            unit,
				UpdatedAt:       now,
			}
			if err := stockRepo.Save(stock); err != nil {
				return err
			}
			result = stock
			return nil
		}

		if unit != "" && existing.Unit != "" && existing.Unit != unit {
			return fmt.Errorf("%s se registra en %s: %w", itemName, existing.Unit, domain.ErrUnitMismatch)
		}

		delta := in.OpeningQuantity.Sub(existing.OpeningQuantity)
		newQuantity := existing.Quantity.Add(delta)
		if newQuantity.LessThan(decimal.Zero) {
			return fmt.Errorf("la cantidad inicial no puede quedar por debajo de lo ya vendido: %w", domain.ErrInvalidOperation)
		}

		existing.OpeningQuantity = in.OpeningQuantity
		existing.Quantity = newQuantity
		if in.Price != nil {
			existing.Price = *in.Price
		}
		if unit != "" {
			existing.Unit = unit
		}
		existing.UpdatedAt = now
		if err := stockRepo.Save(existing); err != nil {
			return err
		}
		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
