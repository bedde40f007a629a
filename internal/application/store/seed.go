package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// Datos de ejemplo para la primera activación: se siembran una única vez
// cuando el almacenamiento todavía no tiene ningún registro persistido.

func seedDate(day int) time.Time {
	return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedItems devuelve el catálogo de demostración.
func SeedItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: "1", Name: "Wireless Mouse", Category: "Electronics", Quantity: 45, MinStock: 20, PurchasePrice: price("15"), SellingPrice: price("29.99"), Supplier: "TechSupply Co.", CreatedAt: seedDate(15), UpdatedAt: seedDate(15)},
		{ID: "2", Name: "USB-C Cable", Category: "Electronics", Quantity: 8, MinStock: 25, PurchasePrice: price("5"), SellingPrice: price("12.99"), Supplier: "CableMart", CreatedAt: seedDate(16), UpdatedAt: seedDate(16)},
		{ID: "3", Name: "Office Chair", Category: "Furniture", Quantity: 12, MinStock: 5, PurchasePrice: price("120"), SellingPrice: price("249.99"), Supplier: "OfficePro", CreatedAt: seedDate(17), UpdatedAt: seedDate(17)},
		{ID: "4", Name: "Desk Lamp", Category: "Furniture", Quantity: 3, MinStock: 10, PurchasePrice: price("25"), SellingPrice: price("49.99"), Supplier: "LightWorld", CreatedAt: seedDate(18), UpdatedAt: seedDate(18)},
		{ID: "5", Name: "Notebook A5", Category: "Stationery", Quantity: 150, MinStock: 50, PurchasePrice: price("2"), SellingPrice: price("5.99"), Supplier: "PaperPlus", CreatedAt: seedDate(19), UpdatedAt: seedDate(19)},
		{ID: "6", Name: "Ballpoint Pen (Box)", Category: "Stationery", Quantity: 5, MinStock: 15, PurchasePrice: price("8"), SellingPrice: price("14.99"), Supplier: "PaperPlus", CreatedAt: seedDate(20), UpdatedAt: seedDate(20)},
		{ID: "7", Name: "Printer Paper", Category: "Stationery", Quantity: 200, MinStock: 100, PurchasePrice: price("25"), SellingPrice: price("39.99"), Supplier: "PaperPlus", CreatedAt: seedDate(21), UpdatedAt: seedDate(21)},
		{ID: "8", Name: "Monitor Stand", Category: "Electronics", Quantity: 18, MinStock: 8, PurchasePrice: price("35"), SellingPrice: price("69.99"), Supplier: "TechSupply Co.", CreatedAt: seedDate(22), UpdatedAt: seedDate(22)},
	}
}

// SeedMovements devuelve el historial de demostración.
func SeedMovements() []entity.StockMovement {
	return []entity.StockMovement{
		{ID: "1", ItemID: "1", Type: entity.MovementIncrease, Quantity: 20, Date: seedDate(20), Note: "Restock from supplier"},
		{ID: "2", ItemID: "2", Type: entity.MovementDecrease, Quantity: 15, Date: seedDate(21), Note: "Sold to customer"},
		{ID: "3", ItemID: "3", Type: entity.MovementIncrease, Quantity: 5, Date: seedDate(22), Note: "New shipment"},
		{ID: "4", ItemID: "5", Type: entity.MovementDecrease, Quantity: 30, Date: seedDate(23), Note: "Bulk sale"},
		{ID: "5", ItemID: "4", Type: entity.MovementDecrease, Quantity: 7, Date: seedDate(24), Note: "Retail sales"},
	}
}
