package validator

import (
	"fmt"

	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	salesEntity "github.com/PaulGerman23/motoshopV2/src/sales/domain/entity"
)

// CustomerInput campos opcionales del cliente para la validación integral
type CustomerInput struct {
	NationalID string `json:"dni"`
	TaxID      string `json:"cuit"`
	Email      string `json:"email"`
	Phone      string `json:"telefono"`
}

// SaleInput datos de la venta a validar de punta a punta
type SaleInput struct {
	Cart          *cartEntity.Cart
	PaymentMethod string
	CashAmount    decimal.Decimal
	CardAmount    decimal.Decimal
	Customer      CustomerInput
}

// SaleReport resultado de la validación integral: todas las
// violaciones encontradas (no se corta en la primera) más los totales
// calculados.
type SaleReport struct {
	Valid    bool            `json:"valido"`
	Errors   []string        `json:"errores"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"descuento"`
	Total    decimal.Decimal `json:"total"`
}

// Sale corre la validación integral de la venta: carrito no vacío,
// stock y precio por línea, método de pago, límites del descuento,
// total positivo y campos de cliente presentes.
func Sale(input SaleInput) SaleReport {
	report := SaleReport{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}

	cart := input.Cart

	if r := NotEmpty(cart); !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	}

	if cart != nil {
		for _, item := range cart.Items {
			if item.Quantity <= 0 || item.Quantity > item.AvailableStock {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s: Stock insuficiente. Disponible: %d unidades", item.Description, item.AvailableStock))
			}
			if item.UnitPrice.LessThan(decimal.Zero) {
				report.Errors = append(report.Errors,
					fmt.Sprintf("%s: El precio debe ser un número válido", item.Description))
			}
		}

		report.Subtotal = cart.Subtotal()
		report.Discount = cart.DiscountAmount()
		report.Total = cart.Total()

		if r := Discount(cart.Discount, report.Subtotal); !r.Valid {
			report.Errors = append(report.Errors, r.Message)
		}
		if r := PositiveTotal(report.Total); !r.Valid {
			report.Errors = append(report.Errors, r.Message)
		}
	}

	method, r := Method(input.PaymentMethod)
	if !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	} else if method == salesEntity.PaymentMixed {
		if r := MixedPayment(input.CashAmount, input.CardAmount, report.Total); !r.Valid {
			report.Errors = append(report.Errors, r.Message)
		}
	}

	if r := NationalID(input.Customer.NationalID); !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	}
	if r := TaxID(input.Customer.TaxID); !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	}
	if r := Email(input.Customer.Email); !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	}
	if _, r := Phone(input.Customer.Phone); !r.Valid {
		report.Errors = append(report.Errors, r.Message)
	}

	report.Valid = len(report.Errors) == 0
	return report
}
