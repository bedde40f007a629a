package dto

import "github.com/shopspring/decimal"

// Tipos de reporte.
const (
	ReportTypeAll      = "all"
	ReportTypeLowStock = "low-stock"

	// CategoryAll desactiva el filtro por categoría.
	CategoryAll = "all"
)

// ReportQuery filtros del reporte de inventario.
type ReportQuery struct {
	Type     string `query:"type"`     // all | low-stock
	Category string `query:"category"` // all | nombre de categoría
}

// ReportRow una fila del reporte (un artículo con su valor de stock).
type ReportRow struct {
	ItemResponse
}

// ReportSummary totales del reporte filtrado, tal como los muestra la
// pantalla de reportes.
type ReportSummary struct {
	Type             string          `json:"type"`
	Category         string          `json:"category"`
	ItemCount        int             `json:"itemCount"`
	TotalStockValue  decimal.Decimal `json:"totalStockValue"`  // Σ quantity * purchasePrice
	PotentialRevenue decimal.Decimal `json:"potentialRevenue"` // Σ quantity * sellingPrice
	LowStockCount    int             `json:"lowStockCount"`
}

// InventoryReport el reporte completo: filas + totales + nombre de archivo
// sugerido (inventory-report-<type>-<category>-<fecha ISO>).
type InventoryReport struct {
	Summary  ReportSummary `json:"summary"`
	Rows     []ReportRow   `json:"rows"`
	Filename string        `json:"filename"`
}
