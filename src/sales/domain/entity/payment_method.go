package entity

// PaymentMethod método de pago aceptado en el POS. Los códigos viajan
// tal cual en el wire (formulario y ticket store).
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentDebit    PaymentMethod = "debito"
	PaymentCredit   PaymentMethod = "credito"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentMixed    PaymentMethod = "mixto"
)

// AllPaymentMethods conjunto cerrado de métodos válidos, en orden de UI
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentDebit,
		PaymentCredit,
		PaymentTransfer,
		PaymentMixed,
	}
}

// IsValid indica si el código pertenece al conjunto cerrado
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentTransfer, PaymentMixed:
		return true
	}
	return false
}

// DisplayName nombre legible por defecto (puede pisarse con el catálogo
// cargado desde payment_method_db)
func (m PaymentMethod) DisplayName() string {
	switch m {
	case PaymentCash:
		return "Efectivo"
	case PaymentDebit:
		return "Tarjeta de Débito"
	case PaymentCredit:
		return "Tarjeta de Crédito"
	case PaymentTransfer:
		return "Transferencia"
	case PaymentMixed:
		return "Pago Mixto"
	}
	return "Desconocido"
}
