package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

// PurchaseHandler maneja las peticiones HTTP del libro de compras (protegido).
type PurchaseHandler struct {
	uc *inventory.UseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *inventory.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar una compra (suma stock)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "item_name, quantity, price, unit, supplier_name, supplier_phone, purchase_date"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Record(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.RecordPurchase(c.Context(), ownerID, inventory.PurchaseInput{
		ItemName:          in.ItemName,
		Quantity:          in.Quantity,
		Price:             in.Price,
		Unit:              in.Unit,
		SupplierName:      in.SupplierName,
		SupplierPhone:     in.SupplierPhone,
		SupplierGstNumber: in.SupplierGstNumber,
		SupplierEmail:     in.SupplierEmail,
		SupplierAddress:   in.SupplierAddress,
		InvoiceNumber:     in.InvoiceNumber,
		PurchaseDate:      in.PurchaseDate,
		Notes:             in.Notes,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"purchase": dto.FromPurchase(res.Entry),
		"stock":    dto.FromStock(res.Stock),
	})
}

// List godoc
// @Summary      Listar compras del dueño (más recientes primero)
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	purchases, err := h.uc.ListPurchases(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.FromPurchase(p))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar una compra (resta stock, piso en 0)
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID de la compra"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	res, err := h.uc.DeletePurchase(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "compra borrada y stock actualizado",
		"stock":   dto.FromStock(res.Stock),
	})
}
