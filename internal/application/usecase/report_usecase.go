package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/store"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// csvHeaders columnas fijas del reporte CSV. El orden y los nombres son
// contrato: los consumidores existentes del reporte dependen de ellos.
var csvHeaders = []string{
	"Item Name",
	"Category",
	"Quantity",
	"Min Stock",
	"Purchase Price",
	"Selling Price",
	"Stock Value",
	"Supplier",
	"Created Date",
	"Last Updated",
}

// ReportPDFGenerator puerto para la representación PDF del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.InventoryReport) ([]byte, error)
}

// ReportUseCase genera reportes de inventario (CSV y PDF) con filtros por
// tipo y categoría, más el resumen de totales de la pantalla de reportes.
type ReportUseCase struct {
	store *store.Store
	pdf   ReportPDFGenerator
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si el endpoint
// PDF no está habilitado.
func NewReportUseCase(s *store.Store, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{store: s, pdf: pdf, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (para tests del nombre de archivo).
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Build arma el reporte filtrado: filas, totales y nombre de archivo.
func (uc *ReportUseCase) Build(q dto.ReportQuery) (*dto.InventoryReport, error) {
	reportType := q.Type
	if reportType == "" {
		reportType = dto.ReportTypeAll
	}
	if reportType != dto.ReportTypeAll && reportType != dto.ReportTypeLowStock {
		return nil, domain.ErrInvalidInput
	}
	category := q.Category
	if category == "" {
		category = dto.CategoryAll
	}

	var filtered []entity.InventoryItem
	for _, item := range uc.store.Items() {
		if category != dto.CategoryAll && item.Category != category {
			continue
		}
		if reportType == dto.ReportTypeLowStock && !item.IsLowStock() {
			continue
		}
		filtered = append(filtered, item)
	}

	totalValue := decimal.Zero
	revenue := decimal.Zero
	lowStock := 0
	rows := make([]dto.ReportRow, 0, len(filtered))
	for _, item := range filtered {
		totalValue = totalValue.Add(item.StockValue())
		revenue = revenue.Add(item.PotentialRevenue())
		if item.IsLowStock() {
			lowStock++
		}
		rows = append(rows, dto.ReportRow{ItemResponse: toItemResponse(item)})
	}

	return &dto.InventoryReport{
		Summary: dto.ReportSummary{
			Type:             reportType,
			Category:         category,
			ItemCount:        len(rows),
			TotalStockValue:  totalValue,
			PotentialRevenue: revenue,
			LowStockCount:    lowStock,
		},
		Rows:     rows,
		Filename: uc.filename(reportType, category),
	}, nil
}

// GenerateCSV genera el reporte en CSV. Cada campo va entre comillas dobles,
// los montos con dos decimales y Stock Value = quantity * purchasePrice.
// Devuelve ErrNoItems si el filtro no deja ningún artículo.
func (uc *ReportUseCase) GenerateCSV(q dto.ReportQuery) ([]byte, string, error) {
	report, err := uc.Build(q)
	if err != nil {
		return nil, "", err
	}
	if len(report.Rows) == 0 {
		return nil, "", domain.ErrNoItems
	}

	// La cabecera va sin comillas; solo las celdas de datos se entrecomillan.
	var b strings.Builder
	b.WriteString(strings.Join(csvHeaders, ","))
	b.WriteByte('\n')
	for _, row := range report.Rows {
		writeCSVRow(&b, []string{
			row.Name,
			row.Category,
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.MinStock),
			row.PurchasePrice.StringFixed(2),
			row.SellingPrice.StringFixed(2),
			row.StockValue.StringFixed(2),
			row.Supplier,
			row.CreatedAt.Format("2006-01-02"),
			row.UpdatedAt.Format("2006-01-02"),
		})
	}
	return []byte(b.String()), report.Filename + ".csv", nil
}

// GeneratePDF genera la representación PDF del mismo reporte.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, q dto.ReportQuery) ([]byte, string, error) {
	report, err := uc.Build(q)
	if err != nil {
		return nil, "", err
	}
	if len(report.Rows) == 0 {
		return nil, "", domain.ErrNoItems
	}
	raw, err := uc.pdf.GenerateReportPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return raw, report.Filename + ".pdf", nil
}

// filename: inventory-report-<tipo>-<categoría>-<fecha ISO> (sin extensión).
func (uc *ReportUseCase) filename(reportType, category string) string {
	return "inventory-report-" + reportType + "-" + category + "-" + uc.now().Format("2006-01-02")
}

// writeCSVRow escribe una fila de datos con todos los campos entre comillas,
// como el formato heredado exige (encoding/csv solo entrecomilla cuando hace
// falta, así que la fila se arma a mano). Las comillas internas se duplican.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
