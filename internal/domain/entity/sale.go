package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta con sus ítems. El descuento de stock asociado se
// ejecuta en la misma transacción que la persistencia de la venta.
type Sale struct {
	ID          string
	SaleDate    time.Time
	TotalAmount decimal.Decimal
	Items       []SaleItem
}

// SaleItem es una línea de venta: producto, cantidad y precio unitario.
type SaleItem struct {
	ID           string
	SaleID       string
	ProductID    string
	Quantity     int64
	PricePerUnit decimal.Decimal
}

// TotalPrice devuelve el total de la línea (cantidad * precio unitario).
func (i SaleItem) TotalPrice() decimal.Decimal {
	return i.PricePerUnit.Mul(decimal.NewFromInt(i.Quantity))
}
