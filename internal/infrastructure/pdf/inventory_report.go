// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SectorFlow + sector  │  título + fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTROS: búsqueda / categoría / orden                      │
//	│  ESTADÍSTICAS: productos / unidades / valor / stock bajo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Cant | Precio | Proveedor | CB │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appinventory "github.com/jhoicas/sectorflow-api/internal/application/inventory"
	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/pkg/money"
)

var _ appinventory.ReportGenerator = (*InventoryReportGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 75, Green: 0, Blue: 130} // #4B0082
	colorGray    = &props.Color{Red: 108, Green: 117, Blue: 125}
	colorDanger  = &props.Color{Red: 220, Green: 53, Blue: 69}
)

// InventoryReportGenerator implementa inventory.ReportGenerator.
type InventoryReportGenerator struct{}

// NewInventoryReportGenerator construye el generador.
func NewInventoryReportGenerator() *InventoryReportGenerator { return &InventoryReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *InventoryReportGenerator) GenerateInventoryPDF(ctx context.Context, data *appinventory.ReportData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("pdf: datos de reporte nil")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		WithAuthor("SectorFlow", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filtersRow(data.Query))
	m.AddRows(statsRow(data.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(data.Items)...)
	if len(data.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No products found matching your search criteria.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data *appinventory.ReportData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SectorFlow", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(data.SectorLabel, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func filtersRow(q dto.InventoryQuery) core.Row {
	search := q.Search
	if search == "" {
		search = "-"
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Search: %s   |   Category: %s   |   Sort: %s (%s)",
			search, q.Category, q.Sort, q.Direction,
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func statsRow(s dto.InventoryStatsDTO) core.Row {
	stat := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1}),
			text.New(label, props.Text{Size: 7, Align: align.Center, Top: 7, Color: colorGray}),
		)
	}
	return row.New(14).Add(
		stat("Total Products", money.FormatInt(int64(s.TotalProducts))),
		stat("Total Units", money.FormatInt(int64(s.TotalUnits))),
		stat("Inventory Value", s.ValueLabel),
		stat("Low Stock Items", strconv.Itoa(s.LowStockItems)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 3, align.Left),
		h("Category", 2, align.Left),
		h("Qty", 1, align.Center),
		h("Price", 2, align.Right),
		h("Supplier", 2, align.Left),
		h("Barcode", 2, align.Center),
	)
}

func itemRows(items []dto.InventoryItemDTO) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		qtyProps := props.Text{Size: 8, Align: align.Center, Top: 3}
		if it.LowStock {
			qtyProps.Style = fontstyle.Bold
			qtyProps.Color = colorDanger
		}
		rows = append(rows, row.New(12).Add(
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Top: 3, Left: 1})),
			col.New(2).Add(text.New(it.Category, props.Text{Size: 8, Top: 3, Left: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), qtyProps)),
			col.New(2).Add(text.New(money.FormatRWF(it.Price), props.Text{Size: 8, Align: align.Right, Top: 3, Right: 1})),
			col.New(2).Add(text.New(it.Supplier, props.Text{Size: 8, Top: 3, Left: 1})),
			col.New(2).Add(code.NewBar(it.Barcode, props.Barcode{Percent: 80, Center: true})),
		))
	}
	return rows
}
