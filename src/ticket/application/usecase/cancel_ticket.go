package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/request"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// CancelTicketUseCase caso de uso para cancelar un ticket pendiente
type CancelTicketUseCase struct {
	store  *store.SessionStore
	client *client.TicketClient
}

// NewCancelTicketUseCase crea una nueva instancia del caso de uso
func NewCancelTicketUseCase(store *store.SessionStore, ticketClient *client.TicketClient) *CancelTicketUseCase {
	return &CancelTicketUseCase{store: store, client: ticketClient}
}

// Execute cancela el ticket en el store. Si el carrito de la sesión
// estaba ligado a ese ticket (lo había recuperado), se vacía también.
func (uc *CancelTicketUseCase) Execute(ctx context.Context, sessionID, csrfToken string, ticketID uuid.UUID, req *request.CancelTicketRequest) error {
	// 1. Acción destructiva: exige confirmación explícita
	if !req.Confirm {
		return entity.ErrConfirmRequired
	}

	// 2. Cancelar en el store (idempotente sobre ya-cancelado)
	if err := uc.client.Cancel(ctx, csrfToken, ticketID); err != nil {
		return err
	}

	log.Printf("❌ Ticket %s cancelado", ticketID)

	// 3. Desligar el carrito local si apuntaba a este ticket
	return uc.store.WithCart(sessionID, func(cart *cartEntity.Cart) error {
		if cart.TicketID != nil && *cart.TicketID == ticketID {
			cart.Clear()
		}
		return nil
	})
}
