package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
)

// SavedTicket respuesta al guardar el carrito como ticket pendiente.
// El carrito viaja vacío en el campo HTML para refrescar la vista.
type SavedTicket struct {
	TicketID uuid.UUID      `json:"ticket_id"`
	Code     string         `json:"codigo_ticket"`
	HTML     string         `json:"html"`
	Notice   *notice.Notice `json:"aviso,omitempty"`
}

// TicketList listado de tickets pendientes más su fragmento HTML
type TicketList struct {
	Tickets []entity.TicketSummary `json:"tickets"`
	HTML    string                 `json:"html"`
}

// FinalizedSale respuesta de la finalización de una venta
type FinalizedSale struct {
	SaleID            uuid.UUID       `json:"venta_id"`
	Code              string          `json:"codigo_venta"`
	Total             decimal.Decimal `json:"total"`
	PaymentMethodName string          `json:"metodo_pago"`
	Change            decimal.Decimal `json:"vuelto"`
	RedirectURL       string          `json:"redirect_url"`
	Notice            *notice.Notice  `json:"aviso,omitempty"`
}
