package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	cartResponse "github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// RecoverTicketUseCase caso de uso para recuperar un ticket pendiente
// al carrito de la sesión
type RecoverTicketUseCase struct {
	store    *store.SessionStore
	client   *client.TicketClient
	renderer cartResponse.CartRenderer
}

// NewRecoverTicketUseCase crea una nueva instancia del caso de uso
func NewRecoverTicketUseCase(
	store *store.SessionStore,
	ticketClient *client.TicketClient,
	renderer cartResponse.CartRenderer,
) *RecoverTicketUseCase {
	return &RecoverTicketUseCase{store: store, client: ticketClient, renderer: renderer}
}

// Execute trae el snapshot del ticket y reemplaza el carrito de la
// sesión. Se arma un carrito nuevo aparte y se reemplaza al final: si
// algo falla, el carrito actual queda intacto.
func (uc *RecoverTicketUseCase) Execute(ctx context.Context, sessionID string, ticketID uuid.UUID) (*cartResponse.CartState, error) {
	// 1. Traer el snapshot del store
	snapshot, err := uc.client.Recover(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	// 2. Solo un ticket pendiente puede volver al carrito
	if !snapshot.Status.CanRecover() {
		return nil, entity.ErrTicketNotPending
	}

	// 3. Armar el carrito desde el snapshot. Las líneas se copian tal
	// cual: el stock pudo haber bajado desde que se guardó el ticket y
	// eso se re-verifica recién al validar la venta, no acá.
	cart := cartEntity.NewCart()
	cart.Items = append(cart.Items, snapshot.Items...)
	cart.Discount = snapshot.Discount
	cart.TicketID = &snapshot.ID
	cart.CustomerID = snapshot.CustomerID
	cart.Note = snapshot.Note

	uc.store.Replace(sessionID, cart)
	log.Printf("🔄 Ticket %s recuperado al carrito de la sesión %s", snapshot.Code, sessionID)

	state, err := cartResponse.NewCartState(cart, uc.renderer, notice.Info("Ticket "+snapshot.Code+" recuperado"))
	if err != nil {
		return nil, err
	}

	return state, nil
}
