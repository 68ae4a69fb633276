package usecase

import (
	"context"
	"fmt"
	"log"

	cartResponse "github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/request"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/response"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// SaveTicketUseCase caso de uso para guardar el carrito como ticket
// pendiente en el store remoto
type SaveTicketUseCase struct {
	store    *store.SessionStore
	client   *client.TicketClient
	renderer cartResponse.CartRenderer
}

// NewSaveTicketUseCase crea una nueva instancia del caso de uso
func NewSaveTicketUseCase(
	store *store.SessionStore,
	ticketClient *client.TicketClient,
	renderer cartResponse.CartRenderer,
) *SaveTicketUseCase {
	return &SaveTicketUseCase{store: store, client: ticketClient, renderer: renderer}
}

// Execute guarda el snapshot del carrito como ticket. El carrito se
// vacía solo si el store confirmó la creación; ante cualquier fallo
// queda intacto para reintentar.
func (uc *SaveTicketUseCase) Execute(ctx context.Context, sessionID, csrfToken string, req *request.SaveTicketRequest) (*response.SavedTicket, error) {
	var saved *response.SavedTicket
	err := uc.store.WithCart(sessionID, func(cart *cartEntity.Cart) error {
		// 1. Validar que haya algo para guardar
		if r := validator.NotEmpty(cart); !r.Valid {
			return entity.ErrEmptyCart
		}
		if r := validator.PositiveTotal(cart.Total()); !r.Valid {
			return entity.ErrNonPositiveTotal
		}

		// 2. Mandar el snapshot al ticket store
		created, err := uc.client.Create(ctx, csrfToken, &client.CreateTicketRequest{
			CustomerID: req.CustomerID,
			Items:      cart.Items,
			Discount:   cart.Discount,
			Note:       req.Note,
		})
		if err != nil {
			return err
		}

		// 3. Recién ahora vaciar el carrito
		cart.Clear()
		log.Printf("✅ Ticket %s guardado (total confirmado por el store: %s)", created.Code, created.Total.StringFixed(2))

		html, err := uc.renderer.RenderCart(cart)
		if err != nil {
			return err
		}

		saved = &response.SavedTicket{
			TicketID: created.ID,
			Code:     created.Code,
			HTML:     html,
			Notice:   notice.Success(fmt.Sprintf("Ticket %s guardado", created.Code)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}
