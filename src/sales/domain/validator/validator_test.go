package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		stock   int
		want    int
		wantMsg string
	}{
		{"válida", "3", 10, 3, ""},
		{"con espacios", " 5 ", 10, 5, ""},
		{"igual al stock", "10", 10, 10, ""},
		{"vacía", "", 10, 0, "Debe ingresar una cantidad"},
		{"no numérica", "abc", 10, 0, "La cantidad debe ser un número"},
		{"decimal", "2.5", 10, 0, "La cantidad debe ser un número"},
		{"cero", "0", 10, 0, "La cantidad debe ser mayor a 0"},
		{"negativa", "-4", 10, 0, "La cantidad debe ser mayor a 0"},
		{"sobre stock", "11", 10, 0, "Stock insuficiente. Disponible: 10 unidades"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, r := Quantity(tt.raw, tt.stock)
			if tt.wantMsg != "" {
				assert.False(t, r.Valid)
				assert.Equal(t, tt.wantMsg, r.Message)
				return
			}
			assert.True(t, r.Valid)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice(t *testing.T) {
	price, r := Price("1250.50")
	require.True(t, r.Valid)
	assert.True(t, price.Equal(dec("1250.50")))

	_, r = Price("")
	assert.Equal(t, "El precio es requerido", r.Message)

	_, r = Price("-1")
	assert.False(t, r.Valid)

	_, r = Price("doce")
	assert.False(t, r.Valid)
}

func TestDuplicate(t *testing.T) {
	cart := cartEntity.NewCart()
	require.NoError(t, cart.AddItem("P-001", "Casco", dec("100"), 5, 1))

	assert.False(t, Duplicate("P-001", cart).Valid)
	assert.True(t, Duplicate("P-002", cart).Valid)
}

func TestMethod(t *testing.T) {
	for _, raw := range []string{"efectivo", "debito", "credito", "transferencia", "mixto"} {
		method, r := Method(raw)
		assert.True(t, r.Valid, raw)
		assert.Equal(t, raw, string(method))
	}

	_, r := Method("")
	assert.Equal(t, "Debe seleccionar un método de pago", r.Message)

	_, r = Method("cheque")
	assert.Equal(t, "Método de pago inválido", r.Message)
}

func TestMixedPaymentExactSum(t *testing.T) {
	total := dec("100.00")

	assert.True(t, MixedPayment(dec("60.00"), dec("40.00"), total).Valid)

	r := MixedPayment(dec("60.00"), dec("39.99"), total)
	assert.False(t, r.Valid)
	assert.Equal(t, "La suma debe ser igual al total: $100.00", r.Message)

	// Con decimales no hay drama de punto flotante binario
	assert.True(t, MixedPayment(dec("60.10"), dec("39.90"), total).Valid)

	assert.False(t, MixedPayment(dec("-1"), dec("101"), total).Valid)
	assert.Equal(t, "Debe ingresar al menos un monto", MixedPayment(decimal.Zero, decimal.Zero, total).Message)
}

func TestChange(t *testing.T) {
	change, r := Change(dec("150.00"), dec("120.00"))
	require.True(t, r.Valid)
	assert.True(t, change.Equal(dec("30.00")))

	change, r = Change(dec("120.00"), dec("120.00"))
	require.True(t, r.Valid)
	assert.True(t, change.IsZero())

	_, r = Change(dec("100.00"), dec("120.00"))
	assert.False(t, r.Valid)
	assert.Equal(t, "Monto insuficiente. Falta: $20.00", r.Message)
}

func TestNationalID(t *testing.T) {
	assert.True(t, NationalID("").Valid, "el DNI es opcional")
	assert.True(t, NationalID("1234567").Valid)
	assert.True(t, NationalID("12345678").Valid)
	assert.False(t, NationalID("123456").Valid)
	assert.False(t, NationalID("123456789").Valid)
	assert.False(t, NationalID("12A45678").Valid)
}

func TestTaxID(t *testing.T) {
	assert.True(t, TaxID("").Valid, "el CUIT es opcional")
	assert.True(t, TaxID("20-12345678-3").Valid)
	assert.False(t, TaxID("20-1234567-3").Valid, "8 dígitos en el bloque central")
	assert.False(t, TaxID("20123456783").Valid)
	assert.False(t, TaxID("2-12345678-3").Valid)
	assert.False(t, TaxID("20-12345678-34").Valid)
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("").Valid, "el email es opcional")
	assert.True(t, Email("juan@example.com").Valid)
	assert.False(t, Email("juan@example").Valid, "falta el punto después del @")
	assert.False(t, Email("juan@@example.com").Valid)
	assert.False(t, Email("juan perez@example.com").Valid)
	assert.False(t, Email("example.com").Valid)
}

func TestPhone(t *testing.T) {
	_, r := Phone("")
	assert.True(t, r.Valid, "el teléfono es opcional")

	normalized, r := Phone("(011) 4555-1234")
	require.True(t, r.Valid)
	assert.Equal(t, "01145551234", normalized)

	_, r = Phone("123456")
	assert.False(t, r.Valid)

	_, r = Phone("1234567890123456")
	assert.False(t, r.Valid)
}

func TestSaleCollectsEveryViolation(t *testing.T) {
	cart := cartEntity.NewCart()

	report := Sale(SaleInput{
		Cart:          cart,
		PaymentMethod: "cheque",
		Customer: CustomerInput{
			NationalID: "12",
			Email:      "sin-arroba",
		},
	})

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "El carrito está vacío. Agregue al menos un producto.")
	assert.Contains(t, report.Errors, "El total debe ser mayor a 0")
	assert.Contains(t, report.Errors, "Método de pago inválido")
	assert.Contains(t, report.Errors, "DNI inválido. Debe tener 7 u 8 dígitos")
	assert.Contains(t, report.Errors, "Email inválido")
	assert.GreaterOrEqual(t, len(report.Errors), 5, "se juntan todas las violaciones, no solo la primera")
}

func TestSaleValidFlow(t *testing.T) {
	cart := cartEntity.NewCart()
	require.NoError(t, cart.AddItem("P-001", "Casco", dec("100.00"), 5, 1))
	require.NoError(t, cart.AddItem("P-002", "Guantes", dec("10.00"), 5, 2))
	require.NoError(t, cart.ApplyDiscount(cartEntity.Discount{Kind: cartEntity.DiscountPercentage, Value: dec("10")}))

	report := Sale(SaleInput{
		Cart:          cart,
		PaymentMethod: "mixto",
		CashAmount:    dec("50.00"),
		CardAmount:    dec("58.00"),
		Customer: CustomerInput{
			NationalID: "30123456",
			TaxID:      "20-12345678-3",
			Email:      "cliente@example.com",
			Phone:      "011 4555 1234",
		},
	})

	assert.True(t, report.Valid, "errores: %v", report.Errors)
	assert.True(t, report.Subtotal.Equal(dec("120.00")))
	assert.True(t, report.Discount.Equal(dec("12.00")))
	assert.True(t, report.Total.Equal(dec("108.00")))
}

func TestSaleMixedMismatchReported(t *testing.T) {
	cart := cartEntity.NewCart()
	require.NoError(t, cart.AddItem("P-001", "Casco", dec("100.00"), 5, 1))

	report := Sale(SaleInput{
		Cart:          cart,
		PaymentMethod: "mixto",
		CashAmount:    dec("60.00"),
		CardAmount:    dec("39.99"),
	})

	assert.False(t, report.Valid)
	assert.Contains(t, report.Errors, "La suma debe ser igual al total: $100.00")
}
