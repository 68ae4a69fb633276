package validator

import (
	"errors"

	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
)

// NotEmpty rechaza un carrito sin líneas
func NotEmpty(cart *cartEntity.Cart) Result {
	if cart == nil || cart.IsEmpty() {
		return fail("El carrito está vacío. Agregue al menos un producto.")
	}
	return ok()
}

// PositiveTotal exige un total estrictamente mayor a cero
func PositiveTotal(total decimal.Decimal) Result {
	if total.LessThanOrEqual(decimal.Zero) {
		return fail("El total debe ser mayor a 0")
	}
	return ok()
}

// Discount valida los límites del descuento contra el subtotal, con un
// mensaje distinto por violación
func Discount(d cartEntity.Discount, subtotal decimal.Decimal) Result {
	err := d.Validate(subtotal)
	switch {
	case err == nil:
		return ok()
	case errors.Is(err, cartEntity.ErrNegativeDiscount):
		return fail("El descuento no puede ser negativo")
	case errors.Is(err, cartEntity.ErrPercentageOverLimit):
		return fail("El descuento no puede ser mayor al 100%")
	case errors.Is(err, cartEntity.ErrDiscountExceedsSubtotal):
		return fail("El descuento no puede ser mayor al subtotal")
	default:
		return fail("Tipo de descuento inválido")
	}
}

// StockInCart re-verifica que ninguna línea exceda su stock guardado
// (puede pasar con un ticket recuperado de otro día)
func StockInCart(cart *cartEntity.Cart) Result {
	for _, item := range cart.Items {
		if item.Quantity > item.AvailableStock {
			return fail("Stock insuficiente para \"" + item.Description + "\"")
		}
	}
	return ok()
}
