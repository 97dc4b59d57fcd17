package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// RecordPurchaseRequest body para POST /api/purchases.
type RecordPurchaseRequest struct {
	ItemName          string          `json:"item_name" validate:"required,min=1,max=200"`
	Quantity          decimal.Decimal `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit" validate:"required"`
	SupplierName      string          `json:"supplier_name" validate:"required"`
	SupplierPhone     string          `json:"supplier_phone" validate:"required"`
	SupplierGstNumber string          `json:"supplier_gst_number,omitempty"`
	SupplierEmail     string          `json:"supplier_email,omitempty"`
	SupplierAddress   string          `json:"supplier_address,omitempty"`
	InvoiceNumber     string          `json:"invoice_number,omitempty"`
	PurchaseDate      string          `json:"purchase_date" validate:"required"`
	Notes             string          `json:"notes,omitempty"`
}

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	ItemName          string          `json:"item_name" validate:"required,min=1,max=200"`
	Quantity          decimal.Decimal `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit,omitempty"`
	PaymentType       string          `json:"payment_type" validate:"required"`
	CustomerName      string          `json:"customer_name" validate:"required"`
	CustomerPhone     string          `json:"customer_phone" validate:"required"`
	CustomerGstNumber string          `json:"customer_gst_number,omitempty"`
	CustomerEmail     string          `json:"customer_email,omitempty"`
	CustomerAddress   string          `json:"customer_address,omitempty"`
	InvoiceNumber     string          `json:"invoice_number" validate:"required"`
	SaleDate          string          `json:"sale_date" validate:"required"`
}

// SetOpeningStockRequest body para PUT /api/stock/opening.
type SetOpeningStockRequest struct {
	ItemName        string           `json:"item_name" validate:"required,min=1,max=200"`
	OpeningQuantity decimal.Decimal  `json:"opening_quantity"`
	Unit            string           `json:"unit,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
}

// StockResponse salida de un agregado de stock.
type StockResponse struct {
	ID              string          `json:"id"`
	ItemName        string          `json:"item_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	OpeningQuantity decimal.Decimal `json:"opening_quantity"`
	Price           decimal.Decimal `json:"price"`
	Unit            string          `json:"unit"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FromStock mapea la entidad a su respuesta. Devuelve nil si el agregado no
// existe (p. ej. borrado antes de eliminar la compra).
func FromStock(s *entity.Stock) *StockResponse {
	if s == nil {
		return nil
	}
	return &StockResponse{
		ID:              s.ID,
		ItemName:        s.ItemName,
		Quantity:        s.Quantity,
		OpeningQuantity: s.OpeningQuantity,
		Price:           s.Price,
		Unit:            s.Unit,
		UpdatedAt:       s.UpdatedAt,
	}
}

// PurchaseResponse salida de una compra del libro.
type PurchaseResponse struct {
	ID                string          `json:"id"`
	ItemName          string          `json:"item_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit"`
	SupplierName      string          `json:"supplier_name"`
	SupplierPhone     string          `json:"supplier_phone"`
	SupplierGstNumber string          `json:"supplier_gst_number,omitempty"`
	SupplierEmail     string          `json:"supplier_email,omitempty"`
	SupplierAddress   string          `json:"supplier_address,omitempty"`
	InvoiceNumber     string          `json:"invoice_number,omitempty"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FromPurchase mapea la entidad a su respuesta.
func FromPurchase(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID,
		ItemName:          p.ItemName,
		Quantity:          p.Quantity,
		Price:             p.Price,
		Unit:              p.Unit,
		SupplierName:      p.SupplierName,
		SupplierPhone:     p.SupplierPhone,
		SupplierGstNumber: p.SupplierGstNumber,
		SupplierEmail:     p.SupplierEmail,
		SupplierAddress:   p.SupplierAddress,
		InvoiceNumber:     p.InvoiceNumber,
		PurchaseDate:      p.PurchaseDate,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
	}
}

// SaleResponse salida de una venta del libro.
type SaleResponse struct {
	ID                string          `json:"id"`
	ItemName          string          `json:"item_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	Unit              string          `json:"unit"`
	PaymentType       string          `json:"payment_type"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	CustomerGstNumber string          `json:"customer_gst_number,omitempty"`
	CustomerEmail     string          `json:"customer_email,omitempty"`
	CustomerAddress   string          `json:"customer_address,omitempty"`
	InvoiceNumber     string          `json:"invoice_number"`
	SaleDate          time.Time       `json:"sale_date"`
	CreatedAt         time.Time       `json:"created_at"`
}

// FromSale mapea la entidad a su respuesta.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:                s.ID,
		ItemName:          s.ItemName,
		Quantity:          s.Quantity,
		Price:             s.Price,
		Unit:              s.Unit,
		PaymentType:       s.PaymentType,
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		CustomerGstNumber: s.CustomerGstNumber,
		CustomerEmail:     s.CustomerEmail,
		CustomerAddress:   s.CustomerAddress,
		InvoiceNumber:     s.InvoiceNumber,
		SaleDate:          s.SaleDate,
		CreatedAt:         s.CreatedAt,
	}
}
