package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/application/ledger"
	"github.com/salesphere/salesphere-api/internal/application/usecase"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
	"github.com/salesphere/salesphere-api/internal/infrastructure/ws"
	"github.com/salesphere/salesphere-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	SaleUC       *usecase.SaleUseCase
	StockLedger  *ledger.StockLedger
	Monitor      *alert.Monitor
	MovementRepo repository.InventoryMovementRepository
	ProductRepo  repository.ProductRepository
	Renderer     alert.ReportRenderer
	Registry     *ws.Registry
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Patch)
	products.Delete("/:id", productHandler.Delete)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockLedger, deps.Monitor, deps.MovementRepo)
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Post("/transfer", inventoryHandler.Transfer)
	invGroup.Get("/movements/:productId", inventoryHandler.ListMovements)
	invGroup.Post("/check-stock", inventoryHandler.CheckStock)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ProductRepo, deps.Renderer)
	reports.Get("/low-stock/pdf", reportHandler.LowStockPDF)
	reports.Get("/low-stock/xlsx", reportHandler.LowStockSpreadsheet)

	// WebSocket de alertas de stock
	app.Use("/ws/stock", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws/stock", websocket.New(func(conn *websocket.Conn) {
		session := ws.NewSession(conn)
		deps.Registry.Add(session)
		deps.Log.Info().Str("session", session.ID()).Int("total", deps.Registry.Count()).Msg("sesión WebSocket conectada")
		defer func() {
			deps.Registry.Remove(session.ID())
			_ = session.Close()
			deps.Log.Info().Str("session", session.ID()).Msg("sesión WebSocket desconectada")
		}()

		// Solo emitimos alertas; se lee para detectar el cierre del cliente.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
