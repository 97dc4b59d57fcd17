package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

// SaleHandler maneja las peticiones HTTP del libro de ventas (protegido).
type SaleHandler struct {
	uc *inventory.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *inventory.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar una venta (descuento condicional de stock)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "item_name, quantity, price, payment_type, customer_name, customer_phone, invoice_number, sale_date"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.RecordSale(c.Context(), ownerID, inventory.SaleInput{
		ItemName:          in.ItemName,
		Quantity:          in.Quantity,
		Price:             in.Price,
		Unit:              in.Unit,
		PaymentType:       in.PaymentType,
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerGstNumber: in.CustomerGstNumber,
		CustomerEmail:     in.CustomerEmail,
		CustomerAddress:   in.CustomerAddress,
		InvoiceNumber:     in.InvoiceNumber,
		SaleDate:          in.SaleDate,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sale":  dto.FromSale(res.Entry),
		"stock": dto.FromStock(res.Stock),
	})
}

// List godoc
// @Summary      Listar ventas del dueño (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	sales, err := h.uc.ListSales(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.FromSale(s))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar una venta (restaura stock)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la venta"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	res, err := h.uc.DeleteSale(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "venta borrada y stock restaurado",
		"stock":   dto.FromStock(res.Stock),
	})
}
