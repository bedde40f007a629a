package repository

import (
	"context"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// Claves lógicas bajo las que se persiste cada colección. Son el contrato
// con el formato heredado: dos documentos JSON independientes.
const (
	KeyItems     = "inventory_items"
	KeyMovements = "stock_movements"
)

// SnapshotStore define el puerto de persistencia del estado del inventario (DIP).
//
// El Store en memoria es la fuente de verdad; cada mutación vuelca la
// colección afectada completa (sin deltas). Load* devuelve ok=false cuando la
// clave nunca fue escrita, que es la señal para sembrar los datos de ejemplo.
//
// SaveAll escribe ambas colecciones; los backends que lo soporten pueden
// agruparlas en una unidad atómica para cerrar la ventana de inconsistencia
// entre las dos escrituras.
type SnapshotStore interface {
	LoadItems(ctx context.Context) ([]entity.InventoryItem, bool, error)
	LoadMovements(ctx context.Context) ([]entity.StockMovement, bool, error)
	SaveItems(ctx context.Context, items []entity.InventoryItem) error
	SaveMovements(ctx context.Context, movements []entity.StockMovement) error
	SaveAll(ctx context.Context, items []entity.InventoryItem, movements []entity.StockMovement) error
}
