package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/cashbook"
	"github.com/jhoicas/kardex-api/internal/application/dto"
)

// CashbookHandler maneja las peticiones HTTP del libro de caja (protegido).
type CashbookHandler struct {
	uc *cashbook.UseCase
}

// NewCashbookHandler construye el handler.
func NewCashbookHandler(uc *cashbook.UseCase) *CashbookHandler {
	return &CashbookHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar un movimiento de caja (cash u online)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCashEntryRequest  true  "type (cash|online), amount"
// @Success      201   {object}  dto.CashEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *CashbookHandler) Register(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterCashEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.uc.Register(c.Context(), ownerID, in.Type, in.Amount)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCashEntry(entry))
}

// List godoc
// @Summary      Listar movimientos de caja (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CashEntryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *CashbookHandler) List(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	if ownerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	entries, err := h.uc.List(c.Context(), ownerID)
	if err != nil {
		return errorResponse(c, err)
	}
	out := make([]dto.CashEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FromCashEntry(e))
	}
	return c.JSON(out)
}
