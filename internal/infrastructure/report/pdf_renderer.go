// Package report genera los reportes de stock bajo que viajan como adjuntos
// del correo de alerta y se descargan desde la API: PDF (Maroto v2) y hoja
// de cálculo (excelize). Ambos muestran las mismas columnas que el cuerpo
// HTML del correo.
package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos de columna (suman 12, la grilla de Maroto).
var columnWidths = []int{2, 2, 1, 2, 1, 1, 1, 2}

var columnTitles = []string{
	"Producto", "Descripción", "Marca", "Categoría",
	"P. Compra", "P. Venta", "Stock", "Mínimo",
}

// MarotoPDFRenderer genera el reporte PDF de stock bajo usando Maroto v2.
type MarotoPDFRenderer struct{}

// NewMarotoPDFRenderer construye el generador.
func NewMarotoPDFRenderer() *MarotoPDFRenderer { return &MarotoPDFRenderer{} }

// RenderPDF genera el PDF con una fila por producto y devuelve sus bytes.
func (g *MarotoPDFRenderer) RenderPDF(_ context.Context, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock Bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Reporte de Stock Bajo", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(columnTitles))
	for i, title := range columnTitles {
		cols = append(cols, col.New(columnWidths[i]).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray}),
		))
	}
	return row.New(8).Add(cols...)
}

func productRow(p *entity.Product) core.Row {
	values := []string{
		orNA(p.Name),
		orNA(p.Description),
		orNA(p.Brand),
		orNA(p.Category),
		p.PurchasePrice.StringFixed(2),
		p.SalePrice.StringFixed(2),
		fmt.Sprintf("%d", p.StockQuantity),
		fmt.Sprintf("%d", p.MinimumQuantity),
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(columnWidths[i]).Add(
			text.New(v, props.Text{Size: 8}),
		))
	}
	return row.New(6).Add(cols...)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
