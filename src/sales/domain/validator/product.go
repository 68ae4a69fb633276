package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
)

// Quantity valida la cantidad ingresada (texto crudo del input) contra
// el stock disponible. Cada caso tiene su mensaje: vacío, no numérico,
// menor o igual a cero, o por encima del stock. En éxito retorna la
// cantidad normalizada.
func Quantity(raw string, availableStock int) (int, Result) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fail("Debe ingresar una cantidad")
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fail("La cantidad debe ser un número")
	}

	if quantity <= 0 {
		return 0, fail("La cantidad debe ser mayor a 0")
	}

	if quantity > availableStock {
		return 0, fail(fmt.Sprintf("Stock insuficiente. Disponible: %d unidades", availableStock))
	}

	return quantity, ok()
}

// Price valida el precio unitario crudo: requerido, numérico y no negativo
func Price(raw string) (decimal.Decimal, Result) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fail("El precio es requerido")
	}

	price, err := decimal.NewFromString(raw)
	if err != nil || price.LessThan(decimal.Zero) {
		return decimal.Zero, fail("El precio debe ser un número válido")
	}

	return price, ok()
}

// Duplicate rechaza un producto que ya está en el carrito
func Duplicate(productID string, cart *cartEntity.Cart) Result {
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return fail("Este producto ya está en el carrito")
		}
	}
	return ok()
}
