package entity

import (
	"github.com/shopspring/decimal"
)

// DiscountKind tipo de descuento global del carrito
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "porcentaje"
	DiscountAmount     DiscountKind = "monto"
)

var percentLimit = decimal.NewFromInt(100)

// Discount descuento global aplicado sobre el subtotal del carrito
type Discount struct {
	Kind  DiscountKind    `json:"tipo"`
	Value decimal.Decimal `json:"valor"`
}

// NoDiscount descuento por defecto: porcentaje 0
func NoDiscount() Discount {
	return Discount{Kind: DiscountPercentage, Value: decimal.Zero}
}

// Validate verifica los límites del descuento contra el subtotal actual.
// Cada violación tiene su error propio: negativo, porcentaje > 100,
// monto > subtotal.
func (d Discount) Validate(subtotal decimal.Decimal) error {
	if d.Kind != DiscountPercentage && d.Kind != DiscountAmount {
		return ErrInvalidDiscountKind
	}
	if d.Value.LessThan(decimal.Zero) {
		return ErrNegativeDiscount
	}
	if d.Kind == DiscountPercentage && d.Value.GreaterThan(percentLimit) {
		return ErrPercentageOverLimit
	}
	if d.Kind == DiscountAmount && d.Value.GreaterThan(subtotal) {
		return ErrDiscountExceedsSubtotal
	}
	return nil
}

// AmountOn calcula el monto descontado sobre un subtotal dado
func (d Discount) AmountOn(subtotal decimal.Decimal) decimal.Decimal {
	if d.Kind == DiscountPercentage {
		return subtotal.Mul(d.Value).Div(percentLimit)
	}
	return d.Value
}

// IsZero indica si el descuento no tiene efecto
func (d Discount) IsZero() bool {
	return d.Value.IsZero()
}
