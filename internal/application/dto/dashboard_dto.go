package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen del inventario para la pantalla principal.
type DashboardSummary struct {
	TotalItems       int                `json:"totalItems"`
	TotalUnits       int                `json:"totalUnits"`
	CategoryCount    int                `json:"categoryCount"`
	LowStockCount    int                `json:"lowStockCount"`
	TotalStockValue  decimal.Decimal    `json:"totalStockValue"`
	PotentialRevenue decimal.Decimal    `json:"potentialRevenue"`
	StockChart       []StockChartBar    `json:"stockChart"`
	RecentMovements  []MovementResponse `json:"recentMovements"`
}

// StockChartBar una barra del gráfico de stock (nombre + cantidad).
type StockChartBar struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	LowStock bool   `json:"lowStock"`
}
