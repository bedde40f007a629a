// Package store contiene el contenedor de estado del inventario: la lista
// autoritativa de artículos y el historial append-only de movimientos,
// espejados a un SnapshotStore en cada mutación.
//
// El Store es deliberadamente permisivo: no valida entradas ni señala ids
// desconocidos (no-op silencioso, igual que el comportamiento heredado). La
// validación vive en la capa de casos de uso, que es quien lo invoca.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

// ItemDraft son los campos de un artículo nuevo; ID, CreatedAt y UpdatedAt
// los asigna el Store.
type ItemDraft struct {
	Name          string
	Category      string
	Quantity      int
	MinStock      int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Supplier      string
}

// ItemPatch es una actualización parcial: solo los campos no-nil se aplican.
type ItemPatch struct {
	Name          *string
	Category      *string
	Quantity      *int
	MinStock      *int
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
	Supplier      *string
}

// Store es el dueño exclusivo de las colecciones de artículos y movimientos.
//
// Todas las operaciones se serializan con un mutex: cada mutación se aplica
// completa, seguida de su escritura de persistencia, antes de que empiece la
// siguiente, incluso bajo un listener HTTP concurrente. Los lectores reciben
// copias.
type Store struct {
	mu        sync.RWMutex
	items     []entity.InventoryItem
	movements []entity.StockMovement

	snapshots repository.SnapshotStore
	now       func() time.Time
	newID     func() string

	subs []func()
}

// Option configura el Store (reloj e ids inyectables para tests).
type Option func(*Store)

// WithClock reemplaza la fuente de tiempo.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza el generador de identificadores.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New carga el estado persistido o, si una colección nunca fue escrita, la
// siembra con los datos de ejemplo y la persiste de inmediato. La siembra es
// una decisión única por vida del almacenamiento: en cuanto existe un
// registro persistido ya no se vuelve a aplicar.
func New(ctx context.Context, snapshots repository.SnapshotStore, opts ...Option) (*Store, error) {
	s := &Store{
		snapshots: snapshots,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}

	items, ok, err := snapshots.LoadItems(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		s.items = items
	} else {
		s.items = SeedItems()
		if err := snapshots.SaveItems(ctx, cloneItems(s.items)); err != nil {
			return nil, err
		}
	}

	movements, ok, err := snapshots.LoadMovements(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		s.movements = movements
	} else {
		s.movements = SeedMovements()
		if err := snapshots.SaveMovements(ctx, cloneMovements(s.movements)); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Subscribe registra un observador que se invoca tras cada mutación exitosa.
// Pensado para registrarse durante el arranque, antes de servir tráfico.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddItem asigna un id fresco, fija createdAt = updatedAt = ahora y añade el
// artículo al final de la colección. No valida nada: eso es responsabilidad
// del invocador.
func (s *Store) AddItem(ctx context.Context, draft ItemDraft) (entity.InventoryItem, error) {
	s.mu.Lock()
	now := s.now()
	item := entity.InventoryItem{
		ID:            s.newID(),
		Name:          draft.Name,
		Category:      draft.Category,
		Quantity:      draft.Quantity,
		MinStock:      draft.MinStock,
		PurchasePrice: draft.PurchasePrice,
		SellingPrice:  draft.SellingPrice,
		Supplier:      draft.Supplier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.items = append(s.items, item)
	err := s.snapshots.SaveItems(ctx, cloneItems(s.items))
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		return entity.InventoryItem{}, err
	}
	notify(subs)
	return item, nil
}

// UpdateItem fusiona los campos del patch en el artículo y fija updatedAt.
// Id desconocido: no-op silencioso.
func (s *Store) UpdateItem(ctx context.Context, id string, patch ItemPatch) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	item := &s.items[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.MinStock != nil {
		item.MinStock = *patch.MinStock
	}
	if patch.PurchasePrice != nil {
		item.PurchasePrice = *patch.PurchasePrice
	}
	if patch.SellingPrice != nil {
		item.SellingPrice = *patch.SellingPrice
	}
	if patch.Supplier != nil {
		item.Supplier = *patch.Supplier
	}
	item.UpdatedAt = s.now()
	err := s.snapshots.SaveItems(ctx, cloneItems(s.items))
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		return err
	}
	notify(subs)
	return nil
}

// DeleteItem elimina el artículo de la colección si existe. Los movimientos
// asociados NO se tocan: el historial sobrevive al artículo, dejando
// referencias itemId colgantes a propósito.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	err := s.snapshots.SaveItems(ctx, cloneItems(s.items))
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		return err
	}
	notify(subs)
	return nil
}

// UpdateStock aplica un movimiento de stock y lo registra en el historial.
//
// increase: quantity + qty. decrease: max(0, quantity - qty); el clamp a
// cero es una red de seguridad, no un camino sancionado: el invocador debe
// garantizar que una salida nunca excede el stock actual. Id desconocido:
// no-op y no se registra movimiento. Persiste ambas colecciones.
func (s *Store) UpdateStock(ctx context.Context, itemID string, qty int, movType string, note string) error {
	s.mu.Lock()
	idx := s.indexOf(itemID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	item := &s.items[idx]
	if movType == entity.MovementIncrease {
		item.Quantity += qty
	} else {
		item.Quantity -= qty
		if item.Quantity < 0 {
			item.Quantity = 0
		}
	}
	item.UpdatedAt = s.now()

	s.movements = append(s.movements, entity.StockMovement{
		ID:       s.newID(),
		ItemID:   itemID,
		Type:     movType,
		Quantity: qty,
		Date:     s.now(),
		Note:     note,
	})
	err := s.snapshots.SaveAll(ctx, cloneItems(s.items), cloneMovements(s.movements))
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		return err
	}
	notify(subs)
	return nil
}

// Items devuelve una copia de la colección de artículos en orden de inserción.
func (s *Store) Items() []entity.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Movements devuelve una copia del historial en orden de registro.
func (s *Store) Movements() []entity.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMovements(s.movements)
}

// ItemByID busca un artículo por id.
func (s *Store) ItemByID(id string) (entity.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return entity.InventoryItem{}, false
	}
	return s.items[idx], true
}

// LowStockItems devuelve los artículos con quantity <= minStock, en el orden
// natural de la colección.
func (s *Store) LowStockItems() []entity.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var low []entity.InventoryItem
	for _, item := range s.items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low
}

// Categories devuelve las categorías distintas presentes, en orden de primera
// aparición. Es un derivado del estado actual, no una lista independiente.
// Nunca devuelve nil: un inventario vacío serializa como [] en JSON.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{}, len(s.items))
	categories := []string{}
	for _, item := range s.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// indexOf busca la posición de un id. Llamar con el lock tomado.
func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func cloneItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	return out
}

func cloneMovements(movements []entity.StockMovement) []entity.StockMovement {
	out := make([]entity.StockMovement, len(movements))
	copy(out, movements)
	return out
}
