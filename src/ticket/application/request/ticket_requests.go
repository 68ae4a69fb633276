package request

import "github.com/shopspring/decimal"

// SaveTicketRequest guarda el carrito actual como ticket pendiente
type SaveTicketRequest struct {
	CustomerID string `json:"cliente_id"`
	Note       string `json:"observacion"`
}

// CancelTicketRequest cancela un ticket pendiente; exige confirmación
// explícita del operador
type CancelTicketRequest struct {
	Confirm bool `json:"confirmar"`
}

// FinalizeTicketRequest convierte un ticket pendiente en venta.
// Los montos de efectivo/tarjeta solo aplican al pago mixto; el monto
// recibido solo al pago en efectivo.
type FinalizeTicketRequest struct {
	PaymentMethod  string          `json:"tipo_pago" binding:"required"`
	CashAmount     decimal.Decimal `json:"monto_efectivo"`
	CardAmount     decimal.Decimal `json:"monto_tarjeta"`
	AmountReceived decimal.Decimal `json:"monto_recibido"`
}
