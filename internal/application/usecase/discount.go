package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/salesphere/salesphere-api/internal/application/dto"
	"github.com/salesphere/salesphere-api/internal/domain"
)

// DiscountPolicy calcula el precio final de un precio dado. Las políticas
// son valores puros: se pueden aplicar al precio de cada ítem sin tocar
// estado.
type DiscountPolicy interface {
	Apply(price decimal.Decimal) decimal.Decimal
}

// FixedDiscount resta un monto fijo. El precio resultante nunca baja de cero.
type FixedDiscount struct {
	Amount decimal.Decimal
}

// Apply devuelve price - Amount, con piso en cero.
func (d FixedDiscount) Apply(price decimal.Decimal) decimal.Decimal {
	out := price.Sub(d.Amount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// PercentageDiscount resta un porcentaje del precio.
type PercentageDiscount struct {
	Percent decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Apply devuelve price - price*Percent/100.
func (d PercentageDiscount) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(d.Percent).Div(oneHundred))
}

// resolveDiscount traduce el DTO a la política concreta. nil significa venta
// sin descuento. Montos negativos y porcentajes fuera de [0, 100] se
// rechazan.
func resolveDiscount(in *dto.DiscountRequest) (DiscountPolicy, error) {
	if in == nil {
		return nil, nil
	}
	if in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case dto.DiscountFixed:
		return FixedDiscount{Amount: in.Value}, nil
	case dto.DiscountPercentage:
		if in.Value.GreaterThan(oneHundred) {
			return nil, domain.ErrInvalidInput
		}
		return PercentageDiscount{Percent: in.Value}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
