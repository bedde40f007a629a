// Package pdf implementa la representación PDF del reporte de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + filtros aplicados  │  Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Cat. | Cant | Mín | Compra | Venta | Valor │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: valor de stock / ingreso potencial / stock bajo    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 95, Blue: 6}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, report *dto.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range report.Rows {
		m.AddRows(tableRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + filtros (izq) y fecha de generación (der).
func headerRow(report *dto.InventoryReport) core.Row {
	filtro := fmt.Sprintf("Tipo: %s   |   Categoría: %s",
		reportTypeLabel(report.Summary.Type), report.Summary.Category)

	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(filtro, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d artículos", report.Summary.ItemCount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de artículos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("P. Compra", 2, align.Right),
		h("P. Venta", 1, align.Right),
		h("Valor Stock", 2, align.Right),
	)
}

// tableRow: una fila por artículo; cantidad en stock bajo resaltada.
func tableRow(r dto.ReportRow) core.Row {
	qtyColor := colorGray
	if r.LowStock {
		qtyColor = colorWarning
	}
	cell := func(value string, size int, a align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	return row.New(6).Add(
		cell(r.Name, 3, align.Left, nil),
		cell(r.Category, 2, align.Left, colorGray),
		cell(strconv.Itoa(r.Quantity), 1, align.Right, qtyColor),
		cell(strconv.Itoa(r.MinStock), 1, align.Right, colorGray),
		cell("$"+r.PurchasePrice.StringFixed(2), 2, align.Right, nil),
		cell("$"+r.SellingPrice.StringFixed(2), 1, align.Right, nil),
		cell("$"+r.StockValue.StringFixed(2), 2, align.Right, nil),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(s dto.ReportSummary) core.Row {
	label := func(txt string) core.Component {
		return text.New(txt, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(txt string) core.Component {
		return text.New(txt, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("VALOR TOTAL DEL STOCK:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New("$"+s.TotalStockValue.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Ingreso potencial:"),
			label("Artículos en stock bajo:"),
			grandLabel,
		),
		col.New(4).Add(
			value("$"+s.PotentialRevenue.StringFixed(2)),
			value(strconv.Itoa(s.LowStockCount)),
			grandValue,
		),
	)
}

func reportTypeLabel(t string) string {
	if t == dto.ReportTypeLowStock {
		return "Solo stock bajo"
	}
	return "Todos los artículos"
}
