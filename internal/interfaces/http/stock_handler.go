package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

// StockHandler maneja las peticiones HTTP de stock (protegido).
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar el stock del dueño (por nombre de artículo)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StockResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	items, err := h.uc.ListStock(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]*dto.StockResponse, 0, len(items))
	for _, s := range items {
		out = append(out, dto.FromStock(s))
	}
	return c.JSON(out)
}

// SetOpening godoc
// @Summary      Declarar el stock inicial de un artículo
// @Description  Crea el agregado si no existe (price obligatorio) o mueve la
//               cantidad disponible según el delta de la nueva cantidad inicial.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetOpeningStockRequest  true  "item_name, opening_quantity, unit?, price?"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/opening [put]
func (h *StockHandler) SetOpening(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SetOpeningStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	stock, err := h.uc.SetOpeningStock(c.Context(), ownerID, inventory.OpeningInput{
		ItemName:        in.ItemName,
		OpeningQuantity: in.OpeningQuantity,
		Unit:            in.Unit,
		Price:           in.Price,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.FromStock(stock))
}

// Delete godoc
// @Summary      Borrar un artículo del stock (por ID o nombre)
// @Description  No borra las compras/ventas que lo referencian; el historial queda.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID o nombre del artículo"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	deleted, err := h.uc.DeleteStockItem(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "artículo borrado del stock",
		"item":    dto.FromStock(deleted),
	})
}
