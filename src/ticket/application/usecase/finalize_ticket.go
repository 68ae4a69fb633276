package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	salesEntity "github.com/PaulGerman23/motoshopV2/src/sales/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/sales/infrastructure/cache"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/request"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/response"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// FinalizeTicketUseCase caso de uso para finalizar un ticket como venta
type FinalizeTicketUseCase struct {
	store        *store.SessionStore
	client       *client.TicketClient
	paymentNames *cache.PaymentMethodCache
}

// NewFinalizeTicketUseCase crea una nueva instancia del caso de uso
func NewFinalizeTicketUseCase(
	store *store.SessionStore,
	ticketClient *client.TicketClient,
	paymentNames *cache.PaymentMethodCache,
) *FinalizeTicketUseCase {
	return &FinalizeTicketUseCase{store: store, client: ticketClient, paymentNames: paymentNames}
}

// Execute valida el pago contra el total del ticket y lo finaliza en el
// store. La decisión final sobre el estado la toma el store; un ticket
// ya cancelado o ya vendido vuelve como error remoto.
func (uc *FinalizeTicketUseCase) Execute(ctx context.Context, sessionID, csrfToken string, ticketID uuid.UUID, req *request.FinalizeTicketRequest) (*response.FinalizedSale, error) {
	// 1. Método de pago válido
	method, r := validator.Method(req.PaymentMethod)
	if !r.Valid {
		return nil, apperrors.NewValidation(r.Message)
	}

	// 2. Traer el ticket para validar montos contra su total vigente
	snapshot, err := uc.client.Recover(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !snapshot.Status.CanFinalize() {
		return nil, entity.ErrTicketNotPending
	}
	total := snapshot.Total()

	// 3. Validaciones propias del método
	change := decimal.Zero
	switch method {
	case salesEntity.PaymentMixed:
		if r := validator.MixedPayment(req.CashAmount, req.CardAmount, total); !r.Valid {
			return nil, apperrors.NewValidation(r.Message)
		}
	case salesEntity.PaymentCash:
		if !req.AmountReceived.IsZero() {
			change, r = validator.Change(req.AmountReceived, total)
			if !r.Valid {
				return nil, apperrors.NewValidation(r.Message)
			}
		}
	}

	// 4. Finalizar en el store
	sale, err := uc.client.Finalize(ctx, csrfToken, ticketID, &client.FinalizeTicketRequest{
		PaymentMethod: string(method),
		CashAmount:    req.CashAmount,
		CardAmount:    req.CardAmount,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Venta %s finalizada (%s, total: %s)", sale.Code, method, sale.Total.StringFixed(2))

	// 5. Desligar el carrito local si estaba trabajando sobre este ticket
	err = uc.store.WithCart(sessionID, func(cart *cartEntity.Cart) error {
		if cart.TicketID != nil && *cart.TicketID == ticketID {
			cart.Clear()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response.FinalizedSale{
		SaleID:            sale.ID,
		Code:              sale.Code,
		Total:             sale.Total,
		PaymentMethodName: uc.paymentNames.GetName(method),
		Change:            change,
		RedirectURL:       fmt.Sprintf("/ventas/detalle/%s", sale.ID),
		Notice:            notice.Success(fmt.Sprintf("Venta %s registrada", sale.Code)),
	}, nil
}
