package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Brand           string          `json:"brand"`
	Category        string          `json:"category" validate:"required"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	StockQuantity   int64           `json:"stock_quantity" validate:"gte=0"`
	MinimumQuantity int64           `json:"minimum_quantity" validate:"gte=0"`
	ExpirationDate  *time.Time      `json:"expiration_date"`
}

// UpdateProductRequest entrada para reemplazar un producto (PUT).
type UpdateProductRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Brand           string          `json:"brand"`
	Category        string          `json:"category" validate:"required"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	MinimumQuantity int64           `json:"minimum_quantity" validate:"gte=0"`
	ExpirationDate  *time.Time      `json:"expiration_date"`
}

// ProductPatch entrada para actualización parcial (PATCH). Conjunto cerrado
// de campos opcionales resuelto en tiempo de compilación; nil = no tocar.
// El stock no se puede modificar por aquí: solo vía el ledger.
type ProductPatch struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description"`
	Brand           *string          `json:"brand"`
	Category        *string          `json:"category" validate:"omitempty,min=1"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	MinimumQuantity *int64           `json:"minimum_quantity" validate:"omitempty,gte=0"`
	ExpirationDate  *time.Time       `json:"expiration_date"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Brand           string          `json:"brand"`
	Category        string          `json:"category"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	StockQuantity   int64           `json:"stock_quantity"`
	MinimumQuantity int64           `json:"minimum_quantity"`
	Availability    string          `json:"availability"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
