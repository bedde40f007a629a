package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario con stock y precios.
// Los nombres JSON (camelCase) son el contrato de persistencia: los documentos
// guardados bajo la clave inventory_items usan exactamente estos campos.
type InventoryItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"minStock"` // umbral de reorden
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Supplier      string          `json:"supplier,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsLowStock indica si el artículo está en stock bajo.
// La comparación es no estricta: quantity == minStock cuenta como bajo.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// StockValue devuelve el valor del stock actual: quantity * purchasePrice.
func (i InventoryItem) StockValue() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Quantity)).Mul(i.PurchasePrice)
}

// PotentialRevenue devuelve el ingreso potencial: quantity * sellingPrice.
func (i InventoryItem) PotentialRevenue() decimal.Decimal {
	return decimal.NewFromInt(int64(i.Quantity)).Mul(i.SellingPrice)
}
