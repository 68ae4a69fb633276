package usecase

import (
	"context"

	"github.com/PaulGerman23/motoshopV2/src/ticket/application/response"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// TicketListRenderer renderiza el listado de tickets como fragmento HTML
type TicketListRenderer interface {
	RenderTicketList(tickets []entity.TicketSummary) (string, error)
}

// ListTicketsUseCase caso de uso para listar los tickets pendientes
type ListTicketsUseCase struct {
	client   *client.TicketClient
	renderer TicketListRenderer
}

// NewListTicketsUseCase crea una nueva instancia del caso de uso
func NewListTicketsUseCase(ticketClient *client.TicketClient, renderer TicketListRenderer) *ListTicketsUseCase {
	return &ListTicketsUseCase{client: ticketClient, renderer: renderer}
}

// Execute trae los tickets pendientes del store y arma el fragmento
// HTML del listado
func (uc *ListTicketsUseCase) Execute(ctx context.Context) (*response.TicketList, error) {
	tickets, err := uc.client.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	html, err := uc.renderer.RenderTicketList(tickets)
	if err != nil {
		return nil, err
	}

	return &response.TicketList{
		Tickets: tickets,
		HTML:    html,
	}, nil
}
