package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/domain"
)

const testOwner = "owner-1"

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// validPurchase entrada válida base; los tests mutan los campos que les interesan.
func validPurchase(item string, qty, price string) PurchaseInput {
	return PurchaseInput{
		ItemName:      item,
		Quantity:      dec(qty),
		Price:         dec(price),
		Unit:          "kg",
		SupplierName:  "Distribuidora El Centro",
		SupplierPhone: "300-123-4567",
		SupplierEmail: "ventas@elcentro.co",
		PurchaseDate:  "2025-03-10",
	}
}

func validSale(item string, qty string) SaleInput {
	return SaleInput{
		ItemName:      item,
		Quantity:      dec(qty),
		Price:         dec("60"),
		PaymentType:   "cash",
		CustomerName:  "Juan Pérez",
		CustomerPhone: "(311) 765-4321",
		InvoiceNumber: "INV-001",
		SaleDate:      "2025-03-11",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordPurchase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPurchase_CreaEntradaYAgregado(t *testing.T) {
	uc, _, purchaseRepo, _ := newTestUseCase()

	res, err := uc.RecordPurchase(context.Background(), testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	require.NotNil(t, res.Entry)
	require.NotNil(t, res.Stock)

	assert.True(t, res.Stock.Quantity.Equal(dec("10")), "el stock debe sembrarse con la cantidad comprada")
	assert.True(t, res.Stock.Price.Equal(dec("50")))
	assert.Equal(t, "kg", res.Stock.Unit)
	// El teléfono queda normalizado a solo dígitos.
	assert.Equal(t, "3001234567", res.Entry.SupplierPhone)

	list, err := uc.ListPurchases(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_ = purchaseRepo
}

func TestRecordPurchase_AcumulaSobreAgregadoExistente(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.RecordPurchase(context.Background(), testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	res, err := uc.RecordPurchase(context.Background(), testOwner, validPurchase("Arroz", "5", "55"))
	require.NoError(t, err)
	assert.True(t, res.Stock.Quantity.Equal(dec("15")))
	// Cada compra sobreescribe el último precio conocido.
	assert.True(t, res.Stock.Price.Equal(dec("55")))
}

func TestRecordPurchase_UnidadDistinta_Rechaza(t *testing.T) {
	uc, stockRepo, purchaseRepo, _ := newTestUseCase()

	_, err := uc.RecordPurchase(context.Background(), testOwner, PurchaseInput{
		ItemName: "Leche", Quantity: dec("20"), Price: dec("3"), Unit: "l",
		SupplierName: "Lácteos SA", SupplierPhone: "3001234567", PurchaseDate: "2025-03-10",
	})
	require.NoError(t, err)

	in := validPurchase("Leche", "5", "4") // unit kg
	_, err = uc.RecordPurchase(context.Background(), testOwner, in)
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)

	// Sin efectos: ni entrada nueva ni cambio en el agregado.
	list, _ := purchaseRepo.List(testOwner)
	assert.Len(t, list, 1)
	s, _ := stockRepo.Get(testOwner, "Leche")
	assert.True(t, s.Quantity.Equal(dec("20")))
	assert.Equal(t, "l", s.Unit)
}

func TestRecordPurchase_Validaciones(t *testing.T) {
	uc, stockRepo, purchaseRepo, _ := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*PurchaseInput)
	}{
		{"artículo vacío", func(in *PurchaseInput) { in.ItemName = "  " }},
		{"cantidad cero", func(in *PurchaseInput) { in.Quantity = decimal.Zero }},
		{"cantidad negativa", func(in *PurchaseInput) { in.Quantity = dec("-1") }},
		{"precio negativo", func(in *PurchaseInput) { in.Price = dec("-5") }},
		{"unidad desconocida", func(in *PurchaseInput) { in.Unit = "toneladas" }},
		{"unidad vacía", func(in *PurchaseInput) { in.Unit = "" }},
		{"proveedor vacío", func(in *PurchaseInput) { in.SupplierName = "" }},
		{"teléfono corto", func(in *PurchaseInput) { in.SupplierPhone = "12345" }},
		{"teléfono con letras y 9 dígitos", func(in *PurchaseInput) { in.SupplierPhone = "tel: 300123456" }},
		{"email sin arroba", func(in *PurchaseInput) { in.SupplierEmail = "ventas.elcentro.co" }},
		{"fecha inválida", func(in *PurchaseInput) { in.PurchaseDate = "10/03/2025" }},
		{"fecha vacía", func(in *PurchaseInput) { in.PurchaseDate = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPurchase("Arroz", "10", "50")
			tc.mutate(&in)
			_, err := uc.RecordPurchase(ctx, testOwner, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Ninguna validación fallida debe haber tocado el almacén.
	list, _ := purchaseRepo.List(testOwner)
	assert.Empty(t, list)
	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.Nil(t, s)
}

func TestRecordPurchase_FallaStock_CompensaLaEntrada(t *testing.T) {
	uc, stockRepo, purchaseRepo, _ := newTestUseCase()
	stockRepo.failIncrementSet = errors.New("disco lleno")

	_, err := uc.RecordPurchase(context.Background(), testOwner, validPurchase("Arroz", "10", "50"))
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// La compra escrita en el paso 1 debe haberse revertido.
	list, _ := purchaseRepo.List(testOwner)
	assert.Empty(t, list, "la entrada del libro debe borrarse al fallar el agregado")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaStock(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	res, err := uc.RecordSale(ctx, testOwner, validSale("Arroz", "3"))
	require.NoError(t, err)
	assert.True(t, res.Stock.Quantity.Equal(dec("7")))
	// La venta hereda la unidad del agregado aunque el caller no la mande.
	assert.Equal(t, "kg", res.Entry.Unit)
	// El precio del agregado no cambia con ventas.
	assert.True(t, res.Stock.Price.Equal(dec("50")))
}

func TestRecordSale_SinAgregado_NoCreaEntrada(t *testing.T) {
	uc, _, _, saleRepo := newTestUseCase()

	_, err := uc.RecordSale(context.Background(), testOwner, validSale("Fantasma", "1"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"vender un artículo sin agregado nunca crea stock")

	list, _ := saleRepo.List(testOwner)
	assert.Empty(t, list)
}

func TestRecordSale_StockInsuficiente(t *testing.T) {
	uc, stockRepo, _, saleRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "5", "50"))
	require.NoError(t, err)

	_, err = uc.RecordSale(ctx, testOwner, validSale("Arroz", "8"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, s.Quantity.Equal(dec("5")), "el stock no debe moverse")
	list, _ := saleRepo.List(testOwner)
	assert.Empty(t, list)
}

func TestRecordSale_UnidadDistinta_Rechaza(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50")) // kg
	require.NoError(t, err)

	in := validSale("Arroz", "2")
	in.Unit = "l"
	_, err = uc.RecordSale(ctx, testOwner, in)
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

func TestRecordSale_UnidadVacia_DifiereALaRegistrada(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	in := validSale("Arroz", "2")
	in.Unit = "" // sin opinión
	res, err := uc.RecordSale(ctx, testOwner, in)
	require.NoError(t, err)
	assert.Equal(t, "kg", res.Entry.Unit)
}

func TestRecordSale_Validaciones(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*SaleInput)
	}{
		{"forma de pago desconocida", func(in *SaleInput) { in.PaymentType = "cheque" }},
		{"forma de pago vacía", func(in *SaleInput) { in.PaymentType = "" }},
		{"cliente vacío", func(in *SaleInput) { in.CustomerName = " " }},
		{"teléfono inválido", func(in *SaleInput) { in.CustomerPhone = "123" }},
		{"factura vacía", func(in *SaleInput) { in.InvoiceNumber = "" }},
		{"fecha inválida", func(in *SaleInput) { in.SaleDate = "el martes" }},
		{"email sin arroba", func(in *SaleInput) { in.CustomerEmail = "juan.correo" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSale("Arroz", "1")
			tc.mutate(&in)
			_, err := uc.RecordSale(ctx, testOwner, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecordSale_FallaEntrada_CompensaElStock(t *testing.T) {
	uc, stockRepo, _, saleRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	saleRepo.failCreate = errors.New("disco lleno")
	_, err = uc.RecordSale(ctx, testOwner, validSale("Arroz", "4"))
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// El decremento del paso 1 debe haberse devuelto.
	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, s.Quantity.Equal(dec("10")), "el stock descontado debe restaurarse")
}

func TestRecordSale_FacturaDuplicada_PropagaRechazoTrasCompensar(t *testing.T) {
	uc, stockRepo, _, saleRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	// El almacén rechaza el número de factura repetido como error de dominio.
	saleRepo.failCreate = fmt.Errorf("factura INV-001 ya registrada: %w", domain.ErrInvalidOperation)
	_, err = uc.RecordSale(ctx, testOwner, validSale("Arroz", "4"))
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.NotErrorIs(t, err, domain.ErrPersistence)

	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, s.Quantity.Equal(dec("10")), "el stock descontado debe restaurarse igual")
}

func TestRecordSale_CompensacionFallida_EstadoInconsistente(t *testing.T) {
	uc, stockRepo, _, saleRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	saleRepo.failCreate = errors.New("disco lleno")
	stockRepo.failIncrementSeed = errors.New("disco sigue lleno")

	_, err = uc.RecordSale(ctx, testOwner, validSale("Arroz", "4"))
	// La divergencia libro/stock se reporta con su propio error, nunca como
	// un fallo de persistencia ordinario.
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
	assert.NotErrorIs(t, err, domain.ErrPersistence)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeletePurchase / DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_CompraVentaYBorrados(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	pres, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	assert.True(t, pres.Stock.Quantity.Equal(dec("10")))

	sres, err := uc.RecordSale(ctx, testOwner, validSale("Arroz", "3"))
	require.NoError(t, err)
	assert.True(t, sres.Stock.Quantity.Equal(dec("7")))

	dres, err := uc.DeleteSale(ctx, testOwner, sres.Entry.ID)
	require.NoError(t, err)
	assert.True(t, dres.Stock.Quantity.Equal(dec("10")), "borrar la venta devuelve su cantidad")

	dres2, err := uc.DeletePurchase(ctx, testOwner, pres.Entry.ID)
	require.NoError(t, err)
	assert.True(t, dres2.Stock.Quantity.Equal(dec("0")), "borrar la compra resta su cantidad")
}

func TestDeletePurchase_NoExiste(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	_, err := uc.DeletePurchase(context.Background(), testOwner, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePurchase_OtroDueno_NoLoVe(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	res, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	_, err = uc.DeletePurchase(ctx, "otro-dueno", res.Entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "las entradas están acotadas por dueño")
}

func TestDeletePurchase_PisoEnCero(t *testing.T) {
	uc, stockRepo, _, _ := newTestUseCase()
	ctx := context.Background()

	pres, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	// Se vende casi todo lo comprado.
	_, err = uc.RecordSale(ctx, testOwner, validSale("Arroz", "8"))
	require.NoError(t, err)

	// Borrar la compra dejaría 2-10 = -8; el comportamiento es recortar en 0.
	res, err := uc.DeletePurchase(ctx, testOwner, pres.Entry.ID)
	require.NoError(t, err)
	assert.True(t, res.Stock.Quantity.Equal(dec("0")))

	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.False(t, s.Quantity.IsNegative(), "la cantidad nunca queda negativa")
}

func TestDeletePurchase_FallaBorrado_CompensaElStock(t *testing.T) {
	uc, stockRepo, purchaseRepo, _ := newTestUseCase()
	ctx := context.Background()

	pres, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	purchaseRepo.failDelete = errors.New("disco lleno")
	_, err = uc.DeletePurchase(ctx, testOwner, pres.Entry.ID)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// El decremento se revierte y la compra sigue en el libro.
	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, s.Quantity.Equal(dec("10")))
	purchaseRepo.failDelete = nil
	p, _ := purchaseRepo.GetByID(testOwner, pres.Entry.ID)
	assert.NotNil(t, p)
}

func TestDeleteSale_RecreaAgregadoBorrado(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	sres, err := uc.RecordSale(ctx, testOwner, validSale("Arroz", "3"))
	require.NoError(t, err)

	// El dueño borra el artículo del stock; el historial del libro queda.
	_, err = uc.DeleteStockItem(ctx, testOwner, "Arroz")
	require.NoError(t, err)

	// Borrar la venta re-crea el agregado sembrado con los datos de la venta.
	dres, err := uc.DeleteSale(ctx, testOwner, sres.Entry.ID)
	require.NoError(t, err)
	require.NotNil(t, dres.Stock)
	assert.True(t, dres.Stock.Quantity.Equal(dec("3")))
	assert.Equal(t, "kg", dres.Stock.Unit)
}

func TestDeleteSale_FallaBorrado_CompensaElStock(t *testing.T) {
	uc, stockRepo, _, saleRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	sres, err := uc.RecordSale(ctx, testOwner, validSale("Arroz", "3"))
	require.NoError(t, err)

	saleRepo.failDelete = errors.New("disco lleno")
	_, err = uc.DeleteSale(ctx, testOwner, sres.Entry.ID)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	s, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, s.Quantity.Equal(dec("7")), "el incremento de restauración debe revertirse")
}

func TestBorrarYRecomprar_RestauraLaMismaCantidad(t *testing.T) {
	uc, stockRepo, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)
	pres, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "4", "52"))
	require.NoError(t, err)

	before, _ := stockRepo.Get(testOwner, "Arroz")

	_, err = uc.DeletePurchase(ctx, testOwner, pres.Entry.ID)
	require.NoError(t, err)
	_, err = uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "4", "52"))
	require.NoError(t, err)

	after, _ := stockRepo.Get(testOwner, "Arroz")
	assert.True(t, after.Quantity.Equal(before.Quantity),
		"borrar y re-crear una compra idéntica deja la misma cantidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// SetOpeningStock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetOpeningStock_ArticuloNuevoSinPrecio_Rechaza(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	_, err := uc.SetOpeningStock(context.Background(), testOwner, OpeningInput{
		ItemName:        "Frijol",
		OpeningQuantity: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"sin compra previa el precio es obligatorio")
}

func TestSetOpeningStock_CreaAgregado(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	price := dec("20")
	stock, err := uc.SetOpeningStock(context.Background(), testOwner, OpeningInput{
		ItemName:        "Frijol",
		OpeningQuantity: dec("5"),
		Price:           &price,
	})
	require.NoError(t, err)
	assert.True(t, stock.Quantity.Equal(dec("5")))
	assert.True(t, stock.OpeningQuantity.Equal(dec("5")))
	assert.Equal(t, "pcs", stock.Unit, "sin unidad declarada se usa la unidad por defecto")
}

func TestSetOpeningStock_ReduccionPorDebajoDeLoVendido_Rechaza(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	price := dec("20")
	_, err := uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("5"), Unit: "kg", Price: &price,
	})
	require.NoError(t, err)

	// Se venden 4 de los 5 iniciales; queda 1 disponible.
	_, err = uc.RecordSale(ctx, testOwner, validSale("Frijol", "4"))
	require.NoError(t, err)

	// Bajar la inicial a 2 movería la cantidad a 1 + (2-5) = -2.
	_, err = uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestSetOpeningStock_AjustaPorDelta(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	price := dec("20")
	_, err := uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("5"), Unit: "kg", Price: &price,
	})
	require.NoError(t, err)
	_, err = uc.RecordSale(ctx, testOwner, validSale("Frijol", "2"))
	require.NoError(t, err)

	// Subir la inicial de 5 a 8 (+3) mueve la cantidad de 3 a 6.
	stock, err := uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("8"),
	})
	require.NoError(t, err)
	assert.True(t, stock.OpeningQuantity.Equal(dec("8")))
	assert.True(t, stock.Quantity.Equal(dec("6")))
	// El precio no se tocó porque no vino en la entrada.
	assert.True(t, stock.Price.Equal(dec("20")))
}

func TestSetOpeningStock_UnidadDistinta_Rechaza(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	price := dec("20")
	_, err := uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("5"), Unit: "kg", Price: &price,
	})
	require.NoError(t, err)

	_, err = uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Frijol", OpeningQuantity: dec("5"), Unit: "l",
	})
	assert.ErrorIs(t, err, domain.ErrUnitMismatch)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListStock / DeleteStockItem / invariante del libro
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteStockItem_PorNombre(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordPurchase(ctx, testOwner, validPurchase("Arroz", "10", "50"))
	require.NoError(t, err)

	deleted, err := uc.DeleteStockItem(ctx, testOwner, "Arroz")
	require.NoError(t, err)
	assert.Equal(t, "Arroz", deleted.ItemName)

	items, err := uc.ListStock(ctx, testOwner)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = uc.DeleteStockItem(ctx, testOwner, "Arroz")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Borrar el agregado no borra el historial del libro.
	purchases, err := uc.ListPurchases(ctx, testOwner)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestInvarianteDelLibro_SecuenciaMixta(t *testing.T) {
	uc, stockRepo, purchaseRepo, saleRepo := newTestUseCase()
	ctx := context.Background()

	price := dec("10")
	_, err := uc.SetOpeningStock(ctx, testOwner, OpeningInput{
		ItemName: "Azúcar", OpeningQuantity: dec("6"), Unit: "kg", Price: &price,
	})
	require.NoError(t, err)

	_, err = uc.RecordPurchase(ctx, testOwner, func() PurchaseInput {
		in := validPurchase("Azúcar", "14", "11")
		return in
	}())
	require.NoError(t, err)

	s1, err := uc.RecordSale(ctx, testOwner, validSale("Azúcar", "7"))
	require.NoError(t, err)
	_, err = uc.RecordSale(ctx, testOwner, validSale("Azúcar", "2"))
	require.NoError(t, err)
	_, err = uc.DeleteSale(ctx, testOwner, s1.Entry.ID)
	require.NoError(t, err)

	// quantity == opening + Σcompras − Σventas (entradas no borradas)
	stock, _ := stockRepo.Get(testOwner, "Azúcar")
	sum := stock.OpeningQuantity
	purchases, _ := purchaseRepo.List(testOwner)
	for _, p := range purchases {
		sum = sum.Add(p.Quantity)
	}
	sales, _ := saleRepo.List(testOwner)
	for _, s := range sales {
		sum = sum.Sub(s.Quantity)
	}
	assert.True(t, stock.Quantity.Equal(sum),
		"la cantidad del agregado debe igualar inicial + compras - ventas vigentes")
	assert.True(t, stock.Quantity.Equal(dec("18"))) // 6 + 14 - 2
}
