package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
	"github.com/tu-usuario/stocktrack/internal/domain"
)

// ReportHandler sirve los reportes de inventario (resumen, CSV y PDF).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func reportQuery(c *fiber.Ctx) dto.ReportQuery {
	return dto.ReportQuery{
		Type:     c.Query("type", dto.ReportTypeAll),
		Category: c.Query("category", dto.CategoryAll),
	}
}

// Summary godoc
// @Summary      Totales del reporte filtrado
// @Tags         reports
// @Produce      json
// @Param        type      query  string  false  "all | low-stock"  default(all)
// @Param        category  query  string  false  "all | categoría"  default(all)
// @Success      200  {object}  dto.InventoryReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	report, err := h.uc.Build(reportQuery(c))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(report)
}

// DownloadCSV godoc
// @Summary      Descargar el reporte en CSV
// @Tags         reports
// @Produce      text/csv
// @Param        type      query  string  false  "all | low-stock"  default(all)
// @Param        category  query  string  false  "all | categoría"  default(all)
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.csv [get]
func (h *ReportHandler) DownloadCSV(c *fiber.Ctx) error {
	raw, filename, err := h.uc.GenerateCSV(reportQuery(c))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// DownloadPDF godoc
// @Summary      Descargar el reporte en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        type      query  string  false  "all | low-stock"  default(all)
// @Param        category  query  string  false  "all | categoría"  default(all)
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	raw, filename, err := h.uc.GeneratePDF(c.Context(), reportQuery(c))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

func (h *ReportHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser all o low-stock"})
	case errors.Is(err, domain.ErrNoItems):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_ITEMS", Message: "ningún artículo coincide con los filtros"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
