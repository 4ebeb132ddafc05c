package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de disponibilidad de un producto.
const (
	AvailabilityAvailable    = "AVAILABLE"
	AvailabilityOutOfStock   = "OUT_OF_STOCK"
	AvailabilityExpiringSoon = "EXPIRING_SOON"
)

// Product representa un producto o SKU del catálogo.
// StockQuantity es el stock global (nunca negativo); MinimumQuantity es el
// umbral de reorden que dispara las alertas de stock bajo.
type Product struct {
	ID              string
	SKU             string // código único
	Name            string
	Description     string
	Brand           string
	Category        string
	PurchasePrice   decimal.Decimal
	SalePrice       decimal.Decimal
	StockQuantity   int64
	MinimumQuantity int64
	Availability    string
	ExpirationDate  *time.Time // nil = no perecedero
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsLowStock indica si el producto está por debajo de su umbral de reorden.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity < p.MinimumQuantity
}
