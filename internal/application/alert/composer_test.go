package alert_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/domain/entity"
)

func producto(name string, stock, minimum int64) *entity.Product {
	return &entity.Product{
		Name:            name,
		Description:     "desc " + name,
		Brand:           "marca",
		Category:        "categoría",
		PurchasePrice:   decimal.NewFromFloat(10.5),
		SalePrice:       decimal.NewFromFloat(15.99),
		StockQuantity:   stock,
		MinimumQuantity: minimum,
	}
}

func TestSummaryMessage_UnaLineaPorProducto(t *testing.T) {
	products := []*entity.Product{
		producto("Café", 3, 10),
		producto("Azúcar", 1, 5),
	}

	msg := alert.SummaryMessage(products)

	assert.Equal(t, "Café: 3 unidades\nAzúcar: 1 unidades", msg)
}

func TestSummaryMessage_SinProductos(t *testing.T) {
	assert.Empty(t, alert.SummaryMessage(nil))
}

func TestComposeDigestHTML_ContieneFilasYEncabezados(t *testing.T) {
	products := []*entity.Product{producto("Café", 3, 10)}

	html := alert.ComposeDigestHTML(products)

	for _, h := range alert.DigestColumns() {
		assert.Contains(t, html, "<th>"+h+"</th>", "debe incluir el encabezado %q", h)
	}
	assert.Contains(t, html, "<td>Café</td>")
	assert.Contains(t, html, "<td>10.50</td>", "precio de compra con dos decimales")
	assert.Contains(t, html, "<td>15.99</td>", "precio de venta con dos decimales")
	assert.Contains(t, html, "<td>3</td>")
	assert.Equal(t, 1, strings.Count(html, "<td>Café</td>"), "una fila por producto")
}

func TestComposeDigestHTML_CamposVaciosComoNA(t *testing.T) {
	p := producto("Café", 3, 10)
	p.Description = ""
	p.Brand = ""

	html := alert.ComposeDigestHTML([]*entity.Product{p})

	assert.Equal(t, 2, strings.Count(html, "<td>N/A</td>"), "descripción y marca vacías se sustituyen por N/A")
}

func TestComposeDigestHTML_EsDeterminista(t *testing.T) {
	products := []*entity.Product{producto("Café", 3, 10), producto("Azúcar", 1, 5)}

	first := alert.ComposeDigestHTML(products)
	second := alert.ComposeDigestHTML(products)

	require.Equal(t, first, second, "misma entrada, mismo HTML")
}
