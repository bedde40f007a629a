package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/infrastructure/localstore"
)

var ucTestNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestStore arma un Store sembrado sobre el backend de archivos en un
// directorio temporal, con reloj fijo e ids secuenciales.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	snaps, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	seq := 0
	s, err := store.New(context.Background(), snaps,
		store.WithClock(func() time.Time { return ucTestNow }),
		store.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("uc-id-%d", seq)
		}),
	)
	require.NoError(t, err)
	return s
}

func validCreate() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:          "Mechanical Keyboard",
		Category:      "Electronics",
		Quantity:      12,
		MinStock:      4,
		PurchasePrice: decimal.RequireFromString("42.50"),
		SellingPrice:  decimal.RequireFromString("79.99"),
		Supplier:      "TechSupply Co.",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update / Delete: la validación vive aquí, no en el Store
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_Valido(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Mechanical Keyboard", out.Name)
	assert.False(t, out.LowStock, "12 > 4 no es stock bajo")
	assert.True(t, out.StockValue.Equal(decimal.RequireFromString("510.00")), "12 * 42.50")
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)
}

func TestItemCreate_Invalido(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))
	ctx := context.Background()

	casos := map[string]func(*dto.CreateItemRequest){
		"nombre vacío":        func(in *dto.CreateItemRequest) { in.Name = "   " },
		"categoría vacía":     func(in *dto.CreateItemRequest) { in.Category = "" },
		"cantidad negativa":   func(in *dto.CreateItemRequest) { in.Quantity = -1 },
		"minStock negativo":   func(in *dto.CreateItemRequest) { in.MinStock = -5 },
		"precio compra < 0":   func(in *dto.CreateItemRequest) { in.PurchasePrice = decimal.RequireFromString("-0.01") },
		"precio venta < 0":    func(in *dto.CreateItemRequest) { in.SellingPrice = decimal.RequireFromString("-1") },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			in := validCreate()
			mutar(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestItemUpdate_IdDesconocidoDevuelveNotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	name := "da igual"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateItemRequest{Name: &name})

	// El Store lo ignoraría en silencio; esta capa sí lo señala.
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemUpdate_PatchParcial(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	minStock := 30
	out, err := uc.Update(context.Background(), "1", dto.UpdateItemRequest{MinStock: &minStock})
	require.NoError(t, err)

	assert.Equal(t, 30, out.MinStock)
	assert.Equal(t, "Wireless Mouse", out.Name, "los campos sin patch no cambian")
	assert.False(t, out.LowStock, "45 > 30 sigue sobre el mínimo")
}

func TestItemDelete_NotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List: búsqueda, filtro por categoría y orden
// ──────────────────────────────────────────────────────────────────────────────

func TestItemList_SinFiltrosConservaOrdenDeInsercion(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{})
	require.NoError(t, err)

	require.Len(t, out.Items, 8)
	assert.Equal(t, "Wireless Mouse", out.Items[0].Name)
	assert.Equal(t, "Monitor Stand", out.Items[7].Name)
	assert.Equal(t, []string{"Electronics", "Furniture", "Stationery"}, out.Categories)
}

func TestItemList_FiltroPorCategoria(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{Category: "Furniture"})
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, "Furniture", item.Category)
	}
}

func TestItemList_CategoryAllNoFiltra(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 8)
}

func TestItemList_BusquedaEnNombreYProveedor(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{Search: "paperplus"})
	require.NoError(t, err)
	assert.Len(t, out.Items, 3, "tres artículos tienen proveedor PaperPlus")

	out, err = uc.List(dto.ListItemsQuery{Search: "MOUSE"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la búsqueda no distingue mayúsculas")
	assert.Equal(t, "Wireless Mouse", out.Items[0].Name)
}

func TestItemList_OrdenPorCantidadDescendente(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{SortField: dto.SortByQuantity, SortDir: "desc"})
	require.NoError(t, err)

	require.Len(t, out.Items, 8)
	assert.Equal(t, "Printer Paper", out.Items[0].Name, "200 unidades primero")
	for i := 1; i < len(out.Items); i++ {
		assert.GreaterOrEqual(t, out.Items[i-1].Quantity, out.Items[i].Quantity)
	}
}

func TestItemList_OrdenPorPrecioAscendente(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	out, err := uc.List(dto.ListItemsQuery{SortField: dto.SortByPurchasePrice, SortDir: "asc"})
	require.NoError(t, err)

	for i := 1; i < len(out.Items); i++ {
		assert.True(t, out.Items[i-1].PurchasePrice.LessThanOrEqual(out.Items[i].PurchasePrice))
	}
}

func TestItemList_OrdenInvalido(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	_, err := uc.List(dto.ListItemsQuery{SortField: "sku"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(dto.ListItemsQuery{SortField: dto.SortByName, SortDir: "sideways"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemLowStock_Derivado(t *testing.T) {
	uc := usecase.NewItemUseCase(newTestStore(t))

	low := uc.LowStock()
	// Del catálogo de ejemplo: USB-C Cable (8<=25), Desk Lamp (3<=10), Ballpoint Pen (5<=15)
	require.Len(t, low, 3)
	for _, item := range low {
		assert.True(t, item.LowStock)
		assert.LessOrEqual(t, item.Quantity, item.MinStock)
	}
}
