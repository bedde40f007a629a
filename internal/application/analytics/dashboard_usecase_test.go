package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktrack/internal/application/analytics"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/infrastructure/localstore"
)

func newDashboard(t *testing.T) *analytics.DashboardUseCase {
	t.Helper()
	snaps, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	seq := 0
	s, err := store.New(context.Background(), snaps,
		store.WithClock(func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }),
		store.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("dash-id-%d", seq)
		}),
	)
	require.NoError(t, err)
	return analytics.NewDashboardUseCase(s, usecase.NewStockUseCase(s))
}

func TestDashboardSummary_Totales(t *testing.T) {
	summary := newDashboard(t).GetSummary()

	assert.Equal(t, 8, summary.TotalItems)
	assert.Equal(t, 441, summary.TotalUnits, "45+8+12+3+150+5+200+18")
	assert.Equal(t, 3, summary.CategoryCount)
	assert.Equal(t, 3, summary.LowStockCount)
	assert.True(t, summary.TotalStockValue.Equal(decimal.RequireFromString("8200")),
		"obtuvo %s", summary.TotalStockValue)
}

func TestDashboardSummary_GraficoOrdenadoPorStock(t *testing.T) {
	summary := newDashboard(t).GetSummary()

	require.Len(t, summary.StockChart, 8)
	assert.Equal(t, "Printer Paper", summary.StockChart[0].Name)
	assert.Equal(t, 200, summary.StockChart[0].Quantity)
	for i := 1; i < len(summary.StockChart); i++ {
		assert.GreaterOrEqual(t, summary.StockChart[i-1].Quantity, summary.StockChart[i].Quantity)
	}
	assert.True(t, summary.StockChart[7].LowStock, "Desk Lamp (3 uds) marca stock bajo")
}

func TestDashboardSummary_MovimientosRecientes(t *testing.T) {
	summary := newDashboard(t).GetSummary()

	require.Len(t, summary.RecentMovements, 5)
	assert.Equal(t, "Retail sales", summary.RecentMovements[0].Note, "el más reciente primero")
}
