package inventory

import (
	"context"
	"errors"
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

// SaleInput entrada para RecordSale. Unit vacía significa "sin opinión": se usa
// la unidad registrada en el agregado.
type SaleInput struct {
	ItemName          string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Unit              string
	PaymentType       string
	CustomerName      string
	CustomerPhone     string
	CustomerGstNumber string
	CustomerEmail     string
	CustomerAddress   string
	InvoiceNumber     string
	SaleDate          string
}

// SaleResult venta creada más el agregado resultante.
type SaleResult struct {
	Entry *entity.Sale
	Stock *entity.Stock
}

// RecordSale registra una venta descontando stock de forma atómica: el almacén
// resta la cantidad solo si hay suficiente (decremento condicional en un solo
// UPDATE), de modo que dos ventas concurrentes nunca sobrevenden. Las ventas no
// crean stock: sin agregado previo la operación falla. Si la inserción de la
// venta falla tras el decremento, el stock se re-incrementa (compensación).
func (uc *UseCase) RecordSale(ctx context.Context, ownerID string, in SaleInput) (*SaleResult, error) {
	itemName := strings.TrimSpace(in.ItemName)
	unit := domaininv.NormalizeUnit(in.Unit)
	paymentType := strings.TrimSpace(in.PaymentType)
	customerName := strings.TrimSpace(in.CustomerName)
	customerPhone := domaininv.NormalizePhone(in.CustomerPhone)
	customerEmail := domaininv.NormalizeEmail(in.CustomerEmail)
	invoiceNumber := strings.TrimSpace(in.InvoiceNumber)
	saleDate, dateOK := domaininv.ParseDate(in.SaleDate)

	if ownerID == "" || itemName == "" ||
		!in.Quantity.GreaterThan(decimal.Zero) ||
		in.Price.LessThan(decimal.Zero) ||
		(unit != "" && !domaininv.IsValidUnit(unit)) ||
		(paymentType != entity.PaymentTypeCash && paymentType != entity.PaymentTypeOnline) ||
		customerName == "" ||
		!domaininv.IsValidPhone(customerPhone) ||
		!domaininv.IsValidEmail(customerEmail) ||
		invoiceNumber == "" ||
		!dateOK {
		return nil, domain.ErrInvalidInput
	}

	stock, err := uc.stockRepo.Get(ownerID, itemName)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrInsufficientStock
	}
	if unit != "" && stock.Unit != "" && stock.Unit != unit {
		return nil, fmt.Errorf("%s se registra en %s: %w", itemName, stock.Unit, domain.ErrUnitMismatch)
	}

	// Unidad efectiva: la del agregado si está fijada, si no la del caller,
	// si no la unidad por defecto.
	saleUnit := stock.Unit
	if saleUnit == "" {
		saleUnit = unit
	}
	if saleUnit == "" {
		saleUnit = domaininv.DefaultUnit
	}

	// Escritura durable #1: decremento condicional (quantity >= qty) en un solo
	// UPDATE. Nil sin error = la condición falló: otro vendedor ganó la carrera
	// o nunca hubo suficiente.
	stock, err = uc.stockRepo.ConditionalDecrement(ownerID, itemName, in.Quantity, saleUnit)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrInsufficientStock
	}

	sale := &entity.Sale{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		ItemName:          itemName,
		Quantity:          in.Quantity,
		Price:             in.Price,
		Unit:              saleUnit,
		PaymentType:       paymentType,
		CustomerName:      customerName,
		CustomerPhone:     customerPhone,
		CustomerGstNumber: strings.TrimSpace(in.CustomerGstNumber),
		CustomerEmail:     customerEmail,
		CustomerAddress:   strings.TrimSpace(in.CustomerAddress),
		InvoiceNumber:     invoiceNumber,
		SaleDate:          saleDate,
		CreatedAt:         time.Now(),
	}

	// Escritura durable #2: la entrada del libro de ventas.
	if err := uc.saleRepo.Create(sale); err != nil {
		if _, compErr := uc.stockRepo.IncrementSeed(ownerID, itemName, in.Quantity, in.Price, saleUnit); compErr != nil {
			log.Error().Err(compErr).
				Str("owner_id", ownerID).
				Str("item_name", itemName).
				Msg("compensación fallida: stock descontado sin venta en el libro")
			return nil, fmt.Errorf("%w: venta de %s", domain.ErrInconsistentState, itemName)
		}
		// Tras compensar, un rechazo de dominio (factura duplicada) se propaga
		// tal cual; solo los fallos de infraestructura se reportan como persistencia.
		if errors.Is(err, domain.ErrInvalidOperation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: insertar venta: %v", domain.ErrPersistence, err)
	}

	return &SaleResult{Entry: sale, Stock: stock}, nil
}

// DeleteSale borra una venta y devuelve su cantidad al agregado. El agregado se
// re-crea si fue borrado entre tanto (sembrado con precio/unidad de la venta).
// Si el borrado de la entrada falla tras el incremento, se decrementa de vuelta.
func (uc *UseCase) DeleteSale(ctx context.Context, ownerID, saleID string) (*StockResult, error) {
	if ownerID == "" || saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(ownerID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	seedUnit := sale.Unit
	if seedUnit == "" {
		seedUnit = domaininv.DefaultUnit
	}

	// Escritura durable #1: devolver la cantidad (upsert; precio/unidad solo se
	// siembran si la fila no existía).
	stock, err := uc.stockRepo.IncrementSeed(ownerID, sale.ItemName, sale.Quantity, sale.Price, seedUnit)
	if err != nil {
		return nil, err
	}

	// Escritura durable #2: quitar la venta del libro.
	if err := uc.saleRepo.Delete(ownerID, sale.ID); err != nil {
		if _, compErr := uc.stockRepo.DecrementFloor(ownerID, sale.ItemName, sale.Quantity); compErr != nil {
			log.Error().Err(compErr).
				Str("owner_id", ownerID).
				Str("sale_id", sale.ID).
				Msg("compensación fallida: stock restaurado con venta aún en el libro")
			return nil, fmt.Errorf("%w: venta %s", domain.ErrInconsistentState, sale.ID)
		}
		return nil, fmt.Errorf("%w: borrar venta: %v", domain.ErrPersistence, err)
	}

	return &StockResult{Stock: stock}, nil
}
