package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotRepo)(nil)

// SnapshotRepo implementa el SnapshotStore sobre PostgreSQL conservando el
// layout heredado: una fila JSONB por clave lógica, no un esquema relacional.
// A diferencia del backend de archivos, SaveAll agrupa las dos claves en una
// transacción, cerrando la ventana de inconsistencia entre colecciones.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el adaptador con el pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// EnsureSchema crea la tabla de snapshots si no existe. Llamar en el arranque.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla snapshots: %w", err)
	}
	return nil
}

// LoadItems lee el documento de artículos. ok=false si la clave no existe.
func (r *SnapshotRepo) LoadItems(ctx context.Context) ([]entity.InventoryItem, bool, error) {
	var items []entity.InventoryItem
	ok, err := r.load(ctx, repository.KeyItems, &items)
	return items, ok, err
}

// LoadMovements lee el documento de movimientos.
func (r *SnapshotRepo) LoadMovements(ctx context.Context) ([]entity.StockMovement, bool, error) {
	var movements []entity.StockMovement
	ok, err := r.load(ctx, repository.KeyMovements, &movements)
	return movements, ok, err
}

// SaveItems vuelca la colección de artículos completa.
func (r *SnapshotRepo) SaveItems(ctx context.Context, items []entity.InventoryItem) error {
	return r.save(ctx, r.pool, repository.KeyItems, items)
}

// SaveMovements vuelca el historial completo.
func (r *SnapshotRepo) SaveMovements(ctx context.Context, movements []entity.StockMovement) error {
	return r.save(ctx, r.pool, repository.KeyMovements, movements)
}

// SaveAll escribe ambas claves dentro de una transacción: o se persisten las
// dos colecciones o ninguna.
func (r *SnapshotRepo) SaveAll(ctx context.Context, items []entity.InventoryItem, movements []entity.StockMovement) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := r.save(ctx, tx, repository.KeyItems, items); err != nil {
		return err
	}
	if err := r.save(ctx, tx, repository.KeyMovements, movements); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// querier cubre pool y tx para las escrituras.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *SnapshotRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM snapshots WHERE key = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("leer snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decodificar snapshot %s: %w", key, err)
	}
	return true, nil
}

func (r *SnapshotRepo) save(ctx context.Context, q querier, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar snapshot %s: %w", key, err)
	}
	_, err = q.Exec(ctx, `
		INSERT INTO snapshots (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		key, raw)
	if err != nil {
		return fmt.Errorf("guardar snapshot %s: %w", key, err)
	}
	return nil
}
