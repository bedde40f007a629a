// Package analytics contiene el caso de uso del resumen de inventario que
// alimenta la pantalla principal.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
)

const (
	dashboardRecentMovements = 5 // movimientos recientes en el widget
	dashboardChartBars       = 8 // barras del gráfico de stock
)

// DashboardUseCase genera el resumen del inventario: totales, gráfico de
// stock y movimientos recientes. Todo se deriva del estado actual del Store;
// no hay agregados materializados.
type DashboardUseCase struct {
	store  *store.Store
	stocks *usecase.StockUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(s *store.Store, stocks *usecase.StockUseCase) *DashboardUseCase {
	return &DashboardUseCase{store: s, stocks: stocks}
}

// GetSummary arma el DashboardSummary completo.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummary {
	items := uc.store.Items()

	totalUnits := 0
	lowStock := 0
	totalValue := decimal.Zero
	revenue := decimal.Zero
	for _, item := range items {
		totalUnits += item.Quantity
		if item.IsLowStock() {
			lowStock++
		}
		totalValue = totalValue.Add(item.StockValue())
		revenue = revenue.Add(item.PotentialRevenue())
	}

	// Gráfico: los artículos con más stock primero, hasta llenar las barras.
	sorted := make([]dto.StockChartBar, 0, len(items))
	for _, item := range items {
		sorted = append(sorted, dto.StockChartBar{
			Name:     item.Name,
			Quantity: item.Quantity,
			LowStock: item.IsLowStock(),
		})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})
	if len(sorted) > dashboardChartBars {
		sorted = sorted[:dashboardChartBars]
	}

	recent := uc.stocks.Movements("", dashboardRecentMovements)

	return &dto.DashboardSummary{
		TotalItems:       len(items),
		TotalUnits:       totalUnits,
		CategoryCount:    len(uc.store.Categories()),
		LowStockCount:    lowStock,
		TotalStockValue:  totalValue,
		PotentialRevenue: revenue,
		StockChart:       sorted,
		RecentMovements:  recent.Movements,
	}
}
