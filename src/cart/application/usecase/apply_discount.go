package usecase

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// ApplyDiscountUseCase caso de uso para aplicar el descuento global
type ApplyDiscountUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewApplyDiscountUseCase crea una nueva instancia del caso de uso
func NewApplyDiscountUseCase(store *store.SessionStore, renderer response.CartRenderer) *ApplyDiscountUseCase {
	return &ApplyDiscountUseCase{store: store, renderer: renderer}
}

// Execute valida y aplica el descuento sobre el subtotal actual
func (uc *ApplyDiscountUseCase) Execute(sessionID string, req *request.ApplyDiscountRequest) (*response.CartState, error) {
	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return nil, apperrors.NewValidation("El descuento debe ser un número")
	}

	discount := entity.Discount{
		Kind:  entity.DiscountKind(req.Kind),
		Value: value,
	}

	var state *response.CartState
	err = uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		if result := validator.Discount(discount, cart.Subtotal()); !result.Valid {
			return apperrors.NewValidation(result.Message)
		}

		if err := cart.ApplyDiscount(discount); err != nil {
			return err
		}

		log.Printf("✅ Descuento aplicado (%s: %s)", req.Kind, value.String())

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Success("Descuento aplicado"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
