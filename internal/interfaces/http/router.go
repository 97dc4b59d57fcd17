package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/cashbook"
	"github.com/jhoicas/kardex-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	CashbookUC  *cashbook.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo va protegido: el dueño sale del
// token y acota cada operación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Libro de compras
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.InventoryUC)
	purchases.Post("/", purchaseHandler.Record)
	purchases.Get("/", purchaseHandler.List)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Libro de ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.InventoryUC)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Delete("/:id", saleHandler.Delete)

	// Stock (agregados)
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.InventoryUC)
	stock.Get("/", stockHandler.List)
	stock.Put("/opening", stockHandler.SetOpening)
	stock.Delete("/:id", stockHandler.Delete)

	// Libro de caja
	transactions := api.Group("/transactions")
	cashbookHandler := NewCashbookHandler(deps.CashbookUC)
	transactions.Post("/", cashbookHandler.Register)
	transactions.Get("/", cashbookHandler.List)
}
