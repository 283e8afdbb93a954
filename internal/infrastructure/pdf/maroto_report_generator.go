// Package pdf genera la versión imprimible del reporte financiero con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Coffee UrbanTech  │  Período + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos / Costos / Utilidad / Margen             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ventas por categoría                                │
//	│  TABLA: Productos más vendidos                              │
//	│  TABLA: Estado del inventario                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/reports"
)

var (
	colorPrimary = &props.Color{Red: 93, Green: 64, Blue: 55} // café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles de los períodos del reporte.
var periodLabels = map[string]string{
	dto.PeriodToday: "Hoy",
	dto.PeriodWeek:  "Últimos 7 días",
	dto.PeriodMonth: "Mes en curso",
	dto.PeriodYear:  "Año en curso",
}

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

// NewMarotoReportGenerator construye el generador con el nombre del negocio
// para el encabezado.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Financiero", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report.Summary)...)

	m.AddRows(sectionTitleRow("VENTAS POR CATEGORÍA"))
	m.AddRows(categoryHeaderRow())
	for _, c := range report.ByCategory {
		m.AddRows(categoryRow(c))
	}

	m.AddRows(sectionTitleRow("PRODUCTOS MÁS VENDIDOS"))
	m.AddRows(topProductsHeaderRow())
	for _, p := range report.TopProducts {
		m.AddRows(topProductRow(p))
	}

	m.AddRows(sectionTitleRow("ESTADO DEL INVENTARIO"))
	m.AddRows(inventoryHeaderRow())
	for _, r := range report.InventoryRows {
		m.AddRows(inventoryRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y período + fecha (der).
func (g *MarotoReportGenerator) headerRow(report *dto.ReportResponse) core.Row {
	label := periodLabels[report.Period]
	if label == "" {
		label = report.Period
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte Financiero", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New(report.DateLabel, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// summaryRows: bloque de KPIs del período en dos filas de tres celdas.
func summaryRows(s dto.ReportSummaryDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return []core.Row{
		row.New(13).Add(
			kpi("Ingresos", "$"+s.TotalRevenue.StringFixed(2)),
			kpi("Costos", "$"+s.TotalCosts.StringFixed(2)),
			kpi("Utilidad neta", "$"+s.NetProfit.StringFixed(2)),
		),
		row.New(13).Add(
			kpi("Transacciones", fmt.Sprintf("%d", s.TotalTransactions)),
			kpi("Ticket promedio", "$"+s.AvgTicket.StringFixed(2)),
			kpi("Margen", s.ProfitMargin.StringFixed(1)+"%"),
		),
	}
}

func sectionTitleRow(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4,
		}),
	))
}

func categoryHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Categoría", 5, align.Left),
		headerCell("Unidades", 2, align.Right),
		headerCell("Ingresos", 3, align.Right),
		headerCell("%", 2, align.Right),
	)
}

func categoryRow(c dto.CategorySalesDTO) core.Row {
	return row.New(6).Add(
		bodyCell(c.Category, 5, align.Left),
		bodyCell(fmt.Sprintf("%d", c.Quantity), 2, align.Right),
		bodyCell("$"+c.Revenue.StringFixed(2), 3, align.Right),
		bodyCell(c.Percentage.StringFixed(1)+"%", 2, align.Right),
	)
}

func topProductsHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Producto", 7, align.Left),
		headerCell("Unidades", 2, align.Right),
		headerCell("Ingresos", 3, align.Right),
	)
}

func topProductRow(p dto.TopProductDTO) core.Row {
	return row.New(6).Add(
		bodyCell(p.Name, 7, align.Left),
		bodyCell(fmt.Sprintf("%d", p.Quantity), 2, align.Right),
		bodyCell("$"+p.Revenue.StringFixed(2), 3, align.Right),
	)
}

func inventoryHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Producto", 6, align.Left),
		headerCell("Stock", 2, align.Right),
		headerCell("Estado", 2, align.Center),
		headerCell("Valor", 2, align.Right),
	)
}

func inventoryRow(r dto.InventoryRowDTO) core.Row {
	return row.New(6).Add(
		bodyCell(r.Name, 6, align.Left),
		bodyCell(fmt.Sprintf("%d", r.Stock), 2, align.Right),
		bodyCell(r.Status, 2, align.Center),
		bodyCell("$"+r.Value.StringFixed(2), 2, align.Right),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1,
	}))
}

func bodyCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Color: colorGray,
	}))
}
