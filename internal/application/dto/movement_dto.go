package dto

import "time"

// UpdateStockRequest body para POST /api/stock/movements.
type UpdateStockRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=increase decrease"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note"`
}

// MovementResponse un movimiento del historial con el nombre del artículo
// resuelto. ItemName es "Unknown item" cuando el artículo fue borrado después
// de registrarse el movimiento (referencia colgante definida, no un error).
type MovementResponse struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	ItemName string    `json:"itemName"`
	Type     string    `json:"type"`
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
	Note     string    `json:"note,omitempty"`
}

// MovementListResponse historial de movimientos, más reciente primero.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int                `json:"total"`
}
