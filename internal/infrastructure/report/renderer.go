package report

import (
	"context"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

var _ alert.ReportRenderer = (*Renderer)(nil)

// Renderer agrupa los dos generadores detrás del puerto alert.ReportRenderer.
type Renderer struct {
	pdf  *MarotoPDFRenderer
	xlsx *ExcelRenderer
}

// NewRenderer construye el renderer combinado.
func NewRenderer() *Renderer {
	return &Renderer{pdf: NewMarotoPDFRenderer(), xlsx: NewExcelRenderer()}
}

// RenderPDF genera el reporte PDF.
func (r *Renderer) RenderPDF(ctx context.Context, products []*entity.Product) ([]byte, error) {
	return r.pdf.RenderPDF(ctx, products)
}

// RenderSpreadsheet genera el reporte XLSX.
func (r *Renderer) RenderSpreadsheet(ctx context.Context, products []*entity.Product) ([]byte, error) {
	return r.xlsx.RenderSpreadsheet(ctx, products)
}
