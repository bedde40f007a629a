package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementIncrease = "increase" // entrada
	MovementDecrease = "decrease" // salida
)

// ValidMovementType indica si el tipo de movimiento es conocido.
func ValidMovementType(t string) bool {
	return t == MovementIncrease || t == MovementDecrease
}

// StockMovement registra un cambio de cantidad contra un artículo.
// El historial es append-only: los movimientos nunca se modifican ni se
// borran, y sobreviven a la eliminación del artículo (ItemID puede quedar
// colgando; los consumidores deben resolver esa referencia como "artículo
// desconocido", no como error).
type StockMovement struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	Type     string    `json:"type"`     // increase | decrease
	Quantity int       `json:"quantity"` // magnitud positiva; el signo lo da Type
	Date     time.Time `json:"date"`
	Note     string    `json:"note,omitempty"`
}
