package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain"
)

// StockHandler maneja los movimientos de stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// UpdateStock godoc
// @Summary      Registrar un movimiento de stock (increase | decrease)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "Movimiento"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStock(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser positivo y type increase|decrease"})
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la salida excede el stock actual"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de movimientos, más reciente primero
// @Tags         stock
// @Produce      json
// @Param        itemId  query  string  false  "Filtrar por artículo"
// @Param        limit   query  int     false  "Límite"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	return c.JSON(h.uc.Movements(c.Query("itemId"), limit))
}
