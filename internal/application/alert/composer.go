package alert

import (
	"fmt"
	"strings"

	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

// Composición del cuerpo del resumen de stock bajo. Funciones puras, sin
// I/O ni llamadas externas: se testean sin mockear transporte alguno.

// SummaryMessage arma el mensaje corto que se difunde a las sesiones
// conectadas: una línea "nombre: N unidades" por producto.
func SummaryMessage(products []*entity.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s: %d unidades", p.Name, p.StockQuantity))
	}
	return strings.Join(lines, "\n")
}

// ComposeDigestHTML arma el cuerpo HTML del correo de resumen: una tabla con
// nombre, descripción, marca, categoría, precios, stock y mínimo por fila.
// Los campos vacíos se sustituyen por "N/A".
func ComposeDigestHTML(products []*entity.Product) string {
	var sb strings.Builder

	sb.WriteString("<html><head><style>")
	sb.WriteString("body { font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4; }")
	sb.WriteString(".container { width: 80%; margin: auto; padding: 20px; background: #fff; border-radius: 5px; }")
	sb.WriteString("h2 { color: #333; }")
	sb.WriteString("table { width: 100%; border-collapse: collapse; margin: 20px 0; }")
	sb.WriteString("th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }")
	sb.WriteString("th { background-color: #f2f2f2; }")
	sb.WriteString("</style></head><body><div class='container'>")
	sb.WriteString("<h2>Reporte de Stock Bajo</h2>")
	sb.WriteString("<p>Adjunto el reporte de productos con stock por debajo del mínimo.</p>")
	sb.WriteString("<table><tr>")
	for _, h := range digestColumns {
		sb.WriteString("<th>")
		sb.WriteString(h)
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr>")

	for _, p := range products {
		sb.WriteString("<tr>")
		writeCell(&sb, orNA(p.Name))
		writeCell(&sb, orNA(p.Description))
		writeCell(&sb, orNA(p.Brand))
		writeCell(&sb, orNA(p.Category))
		writeCell(&sb, p.PurchasePrice.StringFixed(2))
		writeCell(&sb, p.SalePrice.StringFixed(2))
		writeCell(&sb, fmt.Sprintf("%d", p.StockQuantity))
		writeCell(&sb, fmt.Sprintf("%d", p.MinimumQuantity))
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div></body></html>")
	return sb.String()
}

// digestColumns son las columnas del resumen, compartidas con los reportes
// PDF y de hoja de cálculo para que los tres canales muestren lo mismo.
var digestColumns = []string{
	"Producto", "Descripción", "Marca", "Categoría",
	"Precio de Compra", "Precio de Venta", "Stock", "Cantidad Mínima",
}

// DigestColumns devuelve los encabezados del reporte de stock bajo.
func DigestColumns() []string {
	out := make([]string, len(digestColumns))
	copy(out, digestColumns)
	return out
}

func writeCell(sb *strings.Builder, value string) {
	sb.WriteString("<td>")
	sb.WriteString(value)
	sb.WriteString("</td>")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
