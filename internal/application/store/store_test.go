package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeSnapshots implementa repository.SnapshotStore en memoria y cuenta las
// escrituras, para verificar el protocolo de persistencia sin backend real.
type fakeSnapshots struct {
	items        []entity.InventoryItem
	movements    []entity.StockMovement
	hasItems     bool
	hasMovements bool

	saveItemsCalls     int
	saveMovementsCalls int
	saveAllCalls       int
}

func (f *fakeSnapshots) LoadItems(context.Context) ([]entity.InventoryItem, bool, error) {
	return f.items, f.hasItems, nil
}

func (f *fakeSnapshots) LoadMovements(context.Context) ([]entity.StockMovement, bool, error) {
	return f.movements, f.hasMovements, nil
}

func (f *fakeSnapshots) SaveItems(_ context.Context, items []entity.InventoryItem) error {
	f.items, f.hasItems = items, true
	f.saveItemsCalls++
	return nil
}

func (f *fakeSnapshots) SaveMovements(_ context.Context, movements []entity.StockMovement) error {
	f.movements, f.hasMovements = movements, true
	f.saveMovementsCalls++
	return nil
}

func (f *fakeSnapshots) SaveAll(_ context.Context, items []entity.InventoryItem, movements []entity.StockMovement) error {
	f.items, f.hasItems = items, true
	f.movements, f.hasMovements = movements, true
	f.saveAllCalls++
	return nil
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestStore construye un Store ya sembrado, con reloj fijo e ids secuenciales.
func newTestStore(t *testing.T) (*store.Store, *fakeSnapshots) {
	t.Helper()
	snaps := &fakeSnapshots{}
	seq := 0
	s, err := store.New(context.Background(), snaps,
		store.WithClock(func() time.Time { return testNow }),
		store.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("test-id-%d", seq)
		}),
	)
	require.NoError(t, err)
	return s, snaps
}

func draft(name, category string, quantity, minStock int) store.ItemDraft {
	return store.ItemDraft{
		Name:          name,
		Category:      category,
		Quantity:      quantity,
		MinStock:      minStock,
		PurchasePrice: decimal.RequireFromString("5.00"),
		SellingPrice:  decimal.RequireFromString("12.99"),
		Supplier:      "TestSupply",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Siembra y arranque
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_SiembraEnPrimerArranque(t *testing.T) {
	s, snaps := newTestStore(t)

	assert.Len(t, s.Items(), 8, "el catálogo de ejemplo tiene 8 artículos")
	assert.Len(t, s.Movements(), 5, "el historial de ejemplo tiene 5 movimientos")
	// La siembra debe persistirse de inmediato
	assert.Equal(t, 1, snaps.saveItemsCalls)
	assert.Equal(t, 1, snaps.saveMovementsCalls)
}

func TestNew_NoResiembraSiYaHayEstado(t *testing.T) {
	snaps := &fakeSnapshots{
		items:        []entity.InventoryItem{{ID: "x", Name: "Solo", Category: "Misc", Quantity: 1}},
		hasItems:     true,
		movements:    []entity.StockMovement{},
		hasMovements: true,
	}
	s, err := store.New(context.Background(), snaps)
	require.NoError(t, err)

	assert.Len(t, s.Items(), 1, "debe cargar el estado persistido, no la siembra")
	assert.Empty(t, s.Movements(), "una colección vacía persistida no se resiembra")
	assert.Equal(t, 0, snaps.saveItemsCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem / UpdateItem / DeleteItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_AsignaIdYTimestamps(t *testing.T) {
	s, snaps := newTestStore(t)

	item, err := s.AddItem(context.Background(), draft("Keyboard", "Electronics", 30, 10))
	require.NoError(t, err)

	got, found := s.ItemByID(item.ID)
	require.True(t, found)
	assert.Equal(t, "Keyboard", got.Name)
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, 30, got.Quantity)
	assert.Equal(t, 10, got.MinStock)
	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, "TestSupply", got.Supplier)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt, "en la creación createdAt == updatedAt")
	assert.Equal(t, testNow, got.CreatedAt)
	assert.Equal(t, 2, snaps.saveItemsCalls, "siembra + mutación")
}

func TestAddItem_AppendAlFinal(t *testing.T) {
	s, _ := newTestStore(t)

	item, err := s.AddItem(context.Background(), draft("Último", "Misc", 1, 0))
	require.NoError(t, err)

	items := s.Items()
	assert.Equal(t, item.ID, items[len(items)-1].ID, "el artículo nuevo va al final")
}

func TestUpdateItem_FusionaParcialYActualizaTimestamp(t *testing.T) {
	s, _ := newTestStore(t)

	newName := "Ergo Wireless Mouse"
	newPrice := decimal.RequireFromString("18.50")
	err := s.UpdateItem(context.Background(), "1", store.ItemPatch{
		Name:          &newName,
		PurchasePrice: &newPrice,
	})
	require.NoError(t, err)

	got, found := s.ItemByID("1")
	require.True(t, found)
	assert.Equal(t, newName, got.Name)
	assert.True(t, got.PurchasePrice.Equal(newPrice))
	assert.Equal(t, "Electronics", got.Category, "los campos sin patch no cambian")
	assert.Equal(t, 45, got.Quantity)
	assert.Equal(t, testNow, got.UpdatedAt)
	assert.NotEqual(t, got.CreatedAt, got.UpdatedAt, "createdAt es inmutable")
}

func TestUpdateItem_IdDesconocidoEsNoOp(t *testing.T) {
	s, snaps := newTestStore(t)
	before := snaps.saveItemsCalls

	name := "fantasma"
	err := s.UpdateItem(context.Background(), "no-existe", store.ItemPatch{Name: &name})

	require.NoError(t, err, "id desconocido no produce error")
	assert.Equal(t, before, snaps.saveItemsCalls, "un no-op no persiste nada")
}

func TestDeleteItem_ConservaMovimientos(t *testing.T) {
	s, _ := newTestStore(t)

	movementsBefore := s.Movements()
	err := s.DeleteItem(context.Background(), "1")
	require.NoError(t, err)

	_, found := s.ItemByID("1")
	assert.False(t, found, "el artículo borrado ya no se encuentra")
	assert.Equal(t, movementsBefore, s.Movements(),
		"los movimientos del artículo borrado quedan intactos (referencia colgante intencional)")
}

func TestDeleteItem_IdDesconocidoEsNoOp(t *testing.T) {
	s, snaps := newTestStore(t)
	before := snaps.saveItemsCalls

	require.NoError(t, s.DeleteItem(context.Background(), "no-existe"))
	assert.Equal(t, before, snaps.saveItemsCalls)
	assert.Len(t, s.Items(), 8)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_IncreaseSumaYRegistraMovimiento(t *testing.T) {
	s, snaps := newTestStore(t)

	before, _ := s.ItemByID("1") // 45 unidades
	err := s.UpdateStock(context.Background(), "1", 25, entity.MovementIncrease, "restock")
	require.NoError(t, err)

	after, _ := s.ItemByID("1")
	assert.Equal(t, before.Quantity+25, after.Quantity)

	movements := s.Movements()
	last := movements[len(movements)-1]
	assert.Equal(t, "1", last.ItemID)
	assert.Equal(t, entity.MovementIncrease, last.Type)
	assert.Equal(t, 25, last.Quantity)
	assert.Equal(t, "restock", last.Note)
	assert.Equal(t, testNow, last.Date)
	assert.Equal(t, 1, snaps.saveAllCalls, "UpdateStock persiste ambas colecciones")
}

func TestUpdateStock_DecreaseDentroDelStock(t *testing.T) {
	s, _ := newTestStore(t)

	before, _ := s.ItemByID("5") // 150 unidades
	err := s.UpdateStock(context.Background(), "5", 30, entity.MovementDecrease, "")
	require.NoError(t, err)

	after, _ := s.ItemByID("5")
	assert.Equal(t, before.Quantity-30, after.Quantity)
}

// Escenario del clamp: {quantity:8, minStock:25} con decrease de 25 llamado
// directamente al Store (saltándose la validación del invocador) debe quedar
// en 0, nunca en -17.
func TestUpdateStock_DecreaseExcesivoSeClampeaACero(t *testing.T) {
	s, _ := newTestStore(t)

	item, _ := s.ItemByID("2")
	require.Equal(t, 8, item.Quantity)
	require.Equal(t, 25, item.MinStock)

	err := s.UpdateStock(context.Background(), "2", 25, entity.MovementDecrease, "")
	require.NoError(t, err)

	after, _ := s.ItemByID("2")
	assert.Equal(t, 0, after.Quantity, "el piso es 0, nunca negativo")

	// El movimiento registra la magnitud solicitada, no la aplicada
	movements := s.Movements()
	assert.Equal(t, 25, movements[len(movements)-1].Quantity)
}

func TestUpdateStock_IdDesconocidoNoRegistraMovimiento(t *testing.T) {
	s, snaps := newTestStore(t)
	movementsBefore := len(s.Movements())

	err := s.UpdateStock(context.Background(), "no-existe", 10, entity.MovementIncrease, "")

	require.NoError(t, err)
	assert.Len(t, s.Movements(), movementsBefore, "sin artículo no hay movimiento")
	assert.Equal(t, 0, snaps.saveAllCalls)
}

func TestUpdateStock_ActualizaUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.UpdateStock(context.Background(), "3", 5, entity.MovementIncrease, ""))

	after, _ := s.ItemByID("3")
	assert.Equal(t, testNow, after.UpdatedAt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockItems_FronteraNoEstricta(t *testing.T) {
	snaps := &fakeSnapshots{
		items: []entity.InventoryItem{
			{ID: "a", Name: "En frontera", Category: "X", Quantity: 10, MinStock: 10},
			{ID: "b", Name: "Justo encima", Category: "X", Quantity: 11, MinStock: 10},
			{ID: "c", Name: "Muy bajo", Category: "X", Quantity: 0, MinStock: 5},
			{ID: "d", Name: "Sobrado", Category: "X", Quantity: 45, MinStock: 20},
		},
		hasItems:     true,
		hasMovements: true,
	}
	s, err := store.New(context.Background(), snaps)
	require.NoError(t, err)

	low := s.LowStockItems()
	require.Len(t, low, 2)
	assert.Equal(t, "a", low[0].ID, "quantity == minStock cuenta como bajo")
	assert.Equal(t, "c", low[1].ID)
}

func TestLowStockItems_EscenariosDeReferencia(t *testing.T) {
	s, _ := newTestStore(t)

	// {quantity:45, minStock:20} no es stock bajo; {quantity:8, minStock:25} sí.
	ids := make(map[string]bool)
	for _, item := range s.LowStockItems() {
		ids[item.ID] = true
	}
	assert.False(t, ids["1"], "Wireless Mouse (45 > 20) no está en stock bajo")
	assert.True(t, ids["2"], "USB-C Cable (8 <= 25) está en stock bajo")
}

func TestCategories_DistintasEnOrdenDeAparicion(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, []string{"Electronics", "Furniture", "Stationery"}, s.Categories())
}

func TestCategories_InventarioVacioDevuelveSliceVacio(t *testing.T) {
	snaps := &fakeSnapshots{
		items:        []entity.InventoryItem{},
		hasItems:     true,
		hasMovements: true,
	}
	s, err := store.New(context.Background(), snaps)
	require.NoError(t, err)

	categories := s.Categories()
	require.NotNil(t, categories, "debe serializar como [] en JSON, no como null")
	assert.Empty(t, categories)
}

func TestCategories_SeRecalculanTrasBorrar(t *testing.T) {
	s, _ := newTestStore(t)

	// Borrar los dos artículos de Furniture: la categoría desaparece del derivado
	require.NoError(t, s.DeleteItem(context.Background(), "3"))
	require.NoError(t, s.DeleteItem(context.Background(), "4"))

	assert.Equal(t, []string{"Electronics", "Stationery"}, s.Categories())
}

func TestItems_DevuelveCopia(t *testing.T) {
	s, _ := newTestStore(t)

	items := s.Items()
	items[0].Name = "mutado desde fuera"

	got, _ := s.ItemByID(items[0].ID)
	assert.NotEqual(t, "mutado desde fuera", got.Name, "los lectores reciben snapshots, no el estado interno")
}

// ──────────────────────────────────────────────────────────────────────────────
// Observadores y round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_NotificaTrasCadaMutacion(t *testing.T) {
	s, _ := newTestStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	ctx := context.Background()
	item, err := s.AddItem(ctx, draft("Obs", "Misc", 1, 0))
	require.NoError(t, err)
	require.NoError(t, s.UpdateStock(ctx, item.ID, 2, entity.MovementIncrease, ""))
	require.NoError(t, s.DeleteItem(ctx, item.ID))

	assert.Equal(t, 3, notified)
}

func TestSubscribe_NoOpNoNotifica(t *testing.T) {
	s, _ := newTestStore(t)

	notified := 0
	s.Subscribe(func() { notified++ })

	require.NoError(t, s.DeleteItem(context.Background(), "no-existe"))
	assert.Zero(t, notified)
}

func TestRoundTrip_ReconstruyeElMismoEstado(t *testing.T) {
	s, snaps := newTestStore(t)

	ctx := context.Background()
	_, err := s.AddItem(ctx, draft("Nuevo", "Misc", 7, 3))
	require.NoError(t, err)
	require.NoError(t, s.UpdateStock(ctx, "1", 5, entity.MovementDecrease, "venta"))

	// Un segundo Store sobre el mismo backend debe ver colecciones idénticas
	reloaded, err := store.New(ctx, snaps)
	require.NoError(t, err)

	assert.Equal(t, s.Items(), reloaded.Items())
	assert.Equal(t, s.Movements(), reloaded.Movements())
}
