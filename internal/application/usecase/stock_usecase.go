package usecase

import (
	"context"
	"sort"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// UnknownItemName se usa al resolver movimientos cuyo artículo fue borrado.
const UnknownItemName = "Unknown item"

// StockUseCase registra movimientos de stock y consulta el historial.
type StockUseCase struct {
	store *store.Store
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(s *store.Store) *StockUseCase {
	return &StockUseCase{store: s}
}

// UpdateStock valida y aplica un movimiento. Las reglas que el Store no
// impone se imponen aquí: cantidad positiva, tipo conocido, y una salida
// nunca puede exceder el stock actual (el clamp a cero del Store es una red
// de seguridad que esta validación hace inalcanzable).
func (uc *StockUseCase) UpdateStock(ctx context.Context, in dto.UpdateStockRequest) (*dto.ItemResponse, error) {
	if in.Quantity <= 0 || !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	item, found := uc.store.ItemByID(in.ItemID)
	if !found {
		return nil, domain.ErrItemNotFound
	}
	if in.Type == entity.MovementDecrease && in.Quantity > item.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	if err := uc.store.UpdateStock(ctx, in.ItemID, in.Quantity, in.Type, in.Note); err != nil {
		return nil, err
	}
	updated, _ := uc.store.ItemByID(in.ItemID)
	resp := toItemResponse(updated)
	return &resp, nil
}

// Movements devuelve el historial, más reciente primero, opcionalmente
// filtrado por artículo y limitado. El nombre del artículo se resuelve contra
// el estado actual; una referencia colgante resuelve a UnknownItemName.
func (uc *StockUseCase) Movements(itemID string, limit int) *dto.MovementListResponse {
	movements := uc.store.Movements()

	filtered := make([]entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		filtered = append(filtered, m)
	}

	// Orden estable por fecha descendente.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	total := len(filtered)
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	out := make([]dto.MovementResponse, 0, len(filtered))
	for _, m := range filtered {
		out = append(out, uc.toMovementResponse(m))
	}
	return &dto.MovementListResponse{Movements: out, Total: total}
}

func (uc *StockUseCase) toMovementResponse(m entity.StockMovement) dto.MovementResponse {
	name := UnknownItemName
	if item, found := uc.store.ItemByID(m.ItemID); found {
		name = item.Name
	}
	return dto.MovementResponse{
		ID:       m.ID,
		ItemID:   m.ItemID,
		ItemName: name,
		Type:     m.Type,
		Quantity: m.Quantity,
		Date:     m.Date,
		Note:     m.Note,
	}
}
