// Package usecase contiene los casos de uso de la aplicación. Esta capa es
// la "interfaz de usuario" del Store: toda la validación de entrada y el
// chequeo de existencia viven aquí; el Store en sí acepta cualquier valor.
package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// ItemUseCase casos de uso CRUD para artículos del inventario.
type ItemUseCase struct {
	store *store.Store
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(s *store.Store) *ItemUseCase {
	return &ItemUseCase{store: s}
}

// Create valida y crea un artículo nuevo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := validateItemFields(in.Name, in.Category, in.Quantity, in.MinStock, in.PurchasePrice, in.SellingPrice); err != nil {
		return nil, err
	}
	item, err := uc.store.AddItem(ctx, store.ItemDraft{
		Name:          strings.TrimSpace(in.Name),
		Category:      strings.TrimSpace(in.Category),
		Quantity:      in.Quantity,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Supplier:      strings.TrimSpace(in.Supplier),
	})
	if err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un artículo por id.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, found := uc.store.ItemByID(id)
	if !found {
		return nil, domain.ErrItemNotFound
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update aplica una actualización parcial. El Store ignora ids desconocidos
// en silencio; aquí el no encontrado sí se señala al invocador.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if _, found := uc.store.ItemByID(id); !found {
		return nil, domain.ErrItemNotFound
	}
	if err := validateItemPatch(in); err != nil {
		return nil, err
	}
	err := uc.store.UpdateItem(ctx, id, store.ItemPatch{
		Name:          in.Name,
		Category:      in.Category,
		Quantity:      in.Quantity,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Supplier:      in.Supplier,
	})
	if err != nil {
		return nil, err
	}
	item, _ := uc.store.ItemByID(id)
	resp := toItemResponse(item)
	return &resp, nil
}

// Delete elimina un artículo. El historial de movimientos no se toca.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	if _, found := uc.store.ItemByID(id); !found {
		return domain.ErrItemNotFound
	}
	return uc.store.DeleteItem(ctx, id)
}

// List devuelve los artículos filtrados por búsqueda y categoría, ordenados
// según la query. Sin orden explícito se conserva el orden de inserción.
func (uc *ItemUseCase) List(q dto.ListItemsQuery) (*dto.ItemListResponse, error) {
	items := uc.store.Items()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if q.Category != "" && q.Category != dto.CategoryAll && item.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Supplier), search) {
			continue
		}
		filtered = append(filtered, item)
	}

	if q.SortField != "" {
		if err := sortItems(filtered, q.SortField, q.SortDir); err != nil {
			return nil, err
		}
	}

	out := make([]dto.ItemResponse, 0, len(filtered))
	for _, item := range filtered {
		out = append(out, toItemResponse(item))
	}
	return &dto.ItemListResponse{
		Items:      out,
		Total:      len(out),
		Categories: uc.store.Categories(),
	}, nil
}

// LowStock devuelve los artículos en o por debajo de su umbral de reorden.
func (uc *ItemUseCase) LowStock() []dto.ItemResponse {
	low := uc.store.LowStockItems()
	out := make([]dto.ItemResponse, 0, len(low))
	for _, item := range low {
		out = append(out, toItemResponse(item))
	}
	return out
}

// Categories devuelve el conjunto de categorías presentes.
func (uc *ItemUseCase) Categories() []string {
	return uc.store.Categories()
}

func sortItems(items []entity.InventoryItem, field, dir string) error {
	desc := false
	switch dir {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return domain.ErrInvalidInput
	}

	var less func(a, b entity.InventoryItem) bool
	switch field {
	case dto.SortByName:
		less = func(a, b entity.InventoryItem) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case dto.SortByQuantity:
		less = func(a, b entity.InventoryItem) bool { return a.Quantity < b.Quantity }
	case dto.SortByPurchasePrice:
		less = func(a, b entity.InventoryItem) bool { return a.PurchasePrice.LessThan(b.PurchasePrice) }
	case dto.SortBySellingPrice:
		less = func(a, b entity.InventoryItem) bool { return a.SellingPrice.LessThan(b.SellingPrice) }
	case dto.SortByCategory:
		less = func(a, b entity.InventoryItem) bool { return a.Category < b.Category }
	default:
		return domain.ErrInvalidInput
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	return nil
}

func validateItemFields(name, category string, quantity, minStock int, purchase, selling decimal.Decimal) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(category) == "" {
		return domain.ErrInvalidInput
	}
	if quantity < 0 || minStock < 0 {
		return domain.ErrInvalidInput
	}
	if purchase.IsNegative() || selling.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func validateItemPatch(in dto.UpdateItemRequest) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return domain.ErrInvalidInput
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	if in.PurchasePrice != nil && in.PurchasePrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.SellingPrice != nil && in.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toItemResponse(item entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		Quantity:      item.Quantity,
		MinStock:      item.MinStock,
		PurchasePrice: item.PurchasePrice,
		SellingPrice:  item.SellingPrice,
		StockValue:    item.StockValue(),
		LowStock:      item.IsLowStock(),
		Supplier:      item.Supplier,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
