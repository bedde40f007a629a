// Package localstore implementa el SnapshotStore sobre el sistema de
// archivos: un directorio con un documento JSON por clave lógica, imitando el
// almacenamiento clave-valor del que proviene el formato (inventory_items y
// stock_movements como strings JSON).
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

var _ repository.SnapshotStore = (*Store)(nil)

// Store persiste cada colección como <dir>/<clave>.json.
type Store struct {
	dir string
}

// New crea el directorio de datos si no existe.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// LoadItems lee la colección de artículos. ok=false si la clave nunca se escribió.
func (s *Store) LoadItems(_ context.Context) ([]entity.InventoryItem, bool, error) {
	var items []entity.InventoryItem
	ok, err := s.load(repository.KeyItems, &items)
	return items, ok, err
}

// LoadMovements lee el historial de movimientos.
func (s *Store) LoadMovements(_ context.Context) ([]entity.StockMovement, bool, error) {
	var movements []entity.StockMovement
	ok, err := s.load(repository.KeyMovements, &movements)
	return movements, ok, err
}

// SaveItems vuelca la colección completa de artículos.
func (s *Store) SaveItems(_ context.Context, items []entity.InventoryItem) error {
	return s.save(repository.KeyItems, items)
}

// SaveMovements vuelca el historial completo.
func (s *Store) SaveMovements(_ context.Context, movements []entity.StockMovement) error {
	return s.save(repository.KeyMovements, movements)
}

// SaveAll escribe ambas claves. Sobre archivos no hay unidad atómica entre las
// dos escrituras; el backend de PostgreSQL sí las agrupa en una transacción.
func (s *Store) SaveAll(ctx context.Context, items []entity.InventoryItem, movements []entity.StockMovement) error {
	if err := s.SaveItems(ctx, items); err != nil {
		return err
	}
	return s.SaveMovements(ctx, movements)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) load(key string, dst any) (bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("localstore: decodificar %s: %w", key, err)
	}
	return true, nil
}

// save escribe a un archivo temporal y renombra, para que una caída a mitad
// de escritura nunca deje un documento truncado.
func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: codificar %s: %w", key, err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: renombrar %s: %w", key, err)
	}
	return nil
}
