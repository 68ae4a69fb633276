package validator

import (
	"fmt"

	"github.com/shopspring/decimal"

	salesEntity "github.com/PaulGerman23/motoshopV2/src/sales/domain/entity"
)

// Method valida el código de método de pago contra el conjunto cerrado
func Method(raw string) (salesEntity.PaymentMethod, Result) {
	if raw == "" {
		return "", fail("Debe seleccionar un método de pago")
	}

	method := salesEntity.PaymentMethod(raw)
	if !method.IsValid() {
		return "", fail("Método de pago inválido")
	}

	return method, ok()
}

// MixedPayment valida un pago mixto: ambos montos no negativos, al
// menos uno distinto de cero, y la suma exactamente igual al total.
// La igualdad es exacta en decimal, sin banda de tolerancia.
func MixedPayment(cash, card, total decimal.Decimal) Result {
	if cash.LessThan(decimal.Zero) || card.LessThan(decimal.Zero) {
		return fail("Los montos no pueden ser negativos")
	}

	if cash.IsZero() && card.IsZero() {
		return fail("Debe ingresar al menos un monto")
	}

	if !cash.Add(card).Equal(total) {
		return fail(fmt.Sprintf("La suma debe ser igual al total: $%s", total.StringFixed(2)))
	}

	return ok()
}

// Change valida el monto recibido contra el total y calcula el vuelto.
// Un faltante se informa como magnitud positiva.
func Change(received, total decimal.Decimal) (decimal.Decimal, Result) {
	if received.LessThan(total) {
		shortfall := total.Sub(received)
		return decimal.Zero, fail(fmt.Sprintf("Monto insuficiente. Falta: $%s", shortfall.StringFixed(2)))
	}

	return received.Sub(total), ok()
}
