package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrNoItems           = errors.New("no hay artículos para el reporte")
)
