package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

const sheetName = "Stock Bajo"

// ExcelRenderer genera el reporte de stock bajo en formato XLSX con excelize.
type ExcelRenderer struct{}

// NewExcelRenderer construye el generador.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

// RenderSpreadsheet genera el XLSX con una fila por producto y devuelve sus bytes.
func (g *ExcelRenderer) RenderSpreadsheet(_ context.Context, products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, title := range columnTitles {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de encabezado: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("xlsx: escribir encabezado: %w", err)
		}
	}

	for rowIdx, p := range products {
		values := []any{
			orNA(p.Name),
			orNA(p.Description),
			orNA(p.Brand),
			orNA(p.Category),
			p.PurchasePrice.StringFixed(2),
			p.SalePrice.StringFixed(2),
			p.StockQuantity,
			p.MinimumQuantity,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda de dato: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: escribir dato: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
