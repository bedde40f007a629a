package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktrack/internal/application/analytics"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	StockUC     *usecase.StockUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items (CRUD + derivados)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	api.Get("/categories", itemHandler.Categories)

	// Movimientos de stock
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/movements", stockHandler.UpdateStock)
	stock.Get("/movements", stockHandler.List)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/inventory.csv", reportHandler.DownloadCSV)
	reports.Get("/inventory.pdf", reportHandler.DownloadPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.Summary)
}
