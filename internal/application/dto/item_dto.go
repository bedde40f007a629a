package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. Todos los campos del
// artículo salvo id y timestamps, que asigna el Store.
type CreateItemRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category" validate:"required,min=1,max=100"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	MinStock      int             `json:"minStock" validate:"min=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Supplier      string          `json:"supplier"`
}

// UpdateItemRequest actualización parcial: solo los campos presentes se aplican.
type UpdateItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Quantity      *int             `json:"quantity"`
	MinStock      *int             `json:"minStock"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	Supplier      *string          `json:"supplier"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"minStock"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockValue    decimal.Decimal `json:"stockValue"` // quantity * purchasePrice
	LowStock      bool            `json:"lowStock"`
	Supplier      string          `json:"supplier,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ItemListResponse lista de artículos con las categorías derivadas.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Total      int            `json:"total"`
	Categories []string       `json:"categories"`
}

// Campos de ordenamiento aceptados por el listado.
const (
	SortByName          = "name"
	SortByQuantity      = "quantity"
	SortByPurchasePrice = "purchasePrice"
	SortBySellingPrice  = "sellingPrice"
	SortByCategory      = "category"
)

// ListItemsQuery filtros y orden del listado de artículos.
type ListItemsQuery struct {
	Search    string `query:"search"`
	Category  string `query:"category"`
	SortField string `query:"sort"`
	SortDir   string `query:"dir"` // asc | desc
}
