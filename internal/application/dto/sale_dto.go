package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea de venta: producto y cantidad.
type SaleItemRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	SalePrice *decimal.Decimal `json:"sale_price"` // nil = precio de lista del producto
}

// Tipos de descuento aceptados en una venta.
const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// DiscountRequest descuento opcional aplicado al precio unitario de cada
// ítem. Conjunto cerrado de tipos, igual que ProductPatch: nada se resuelve
// por nombre en runtime.
type DiscountRequest struct {
	Type  string          `json:"type" validate:"required,oneof=fixed percentage"`
	Value decimal.Decimal `json:"value"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount *DiscountRequest  `json:"discount,omitempty"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID          string          `json:"id"`
	SaleDate    string          `json:"sale_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}
