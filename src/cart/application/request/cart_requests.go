package request

import (
	"github.com/shopspring/decimal"

	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
)

// AddItemRequest alta de una línea en el carrito. Precio y cantidad
// llegan como texto crudo del formulario y se normalizan en la
// validación.
type AddItemRequest struct {
	ProductID      string `json:"producto_id" binding:"required"`
	Description    string `json:"descripcion" binding:"required"`
	UnitPrice      string `json:"precio" binding:"required"`
	AvailableStock int    `json:"stock"`
	Quantity       string `json:"cantidad" binding:"required"`
}

// SetQuantityRequest cambio de cantidad de una línea existente
type SetQuantityRequest struct {
	Quantity string `json:"cantidad" binding:"required"`
}

// ClearCartRequest vaciado del carrito; exige confirmación explícita
type ClearCartRequest struct {
	Confirm bool `json:"confirmar"`
}

// ApplyDiscountRequest aplica el descuento global del carrito
type ApplyDiscountRequest struct {
	Kind  string `json:"tipo" binding:"required"`
	Value string `json:"valor" binding:"required"`
}

// ValidateSaleRequest validación integral previa a finalizar la venta
type ValidateSaleRequest struct {
	PaymentMethod  string                  `json:"tipo_pago"`
	CashAmount     decimal.Decimal         `json:"monto_efectivo"`
	CardAmount     decimal.Decimal         `json:"monto_tarjeta"`
	AmountReceived decimal.Decimal         `json:"monto_recibido"`
	Customer       validator.CustomerInput `json:"cliente"`
}
