package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
)

// TicketStatus estado del ticket en el store remoto.
// Ciclo de vida: pendiente -> finalizado | cancelado (terminales).
type TicketStatus string

const (
	TicketPending   TicketStatus = "pendiente"
	TicketFinalized TicketStatus = "finalizado"
	TicketCancelled TicketStatus = "cancelado"
)

// IsTerminal indica si el estado no admite más transiciones
func (s TicketStatus) IsTerminal() bool {
	return s == TicketFinalized || s == TicketCancelled
}

// CanRecover solo un ticket pendiente puede volver al carrito
func (s TicketStatus) CanRecover() bool {
	return s == TicketPending
}

// CanFinalize solo un ticket pendiente puede finalizarse
func (s TicketStatus) CanFinalize() bool {
	return s == TicketPending
}

// CanCancel solo un ticket pendiente puede cancelarse
func (s TicketStatus) CanCancel() bool {
	return s == TicketPending
}

// TicketSummary resumen de un ticket pendiente para el listado
type TicketSummary struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"codigo_ticket"`
	CreatedAt time.Time       `json:"fecha_creacion"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"items_count"`
}

// TicketSnapshot foto completa de un ticket tal como la devuelve el
// store remoto al recuperarlo
type TicketSnapshot struct {
	ID         uuid.UUID             `json:"id"`
	Code       string                `json:"codigo_ticket"`
	Status     TicketStatus          `json:"estado"`
	Items      []cartEntity.LineItem `json:"productos"`
	Discount   cartEntity.Discount   `json:"descuento"`
	CustomerID string                `json:"cliente_id,omitempty"`
	Note       string                `json:"observacion,omitempty"`
}

// Total recalcula el total del snapshot con la misma regla del carrito
func (t *TicketSnapshot) Total() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range t.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	total := subtotal.Sub(t.Discount.AmountOn(subtotal))
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}
