package usecase

import (
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// RemoveDiscountUseCase caso de uso para quitar el descuento global
type RemoveDiscountUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewRemoveDiscountUseCase crea una nueva instancia del caso de uso
func NewRemoveDiscountUseCase(store *store.SessionStore, renderer response.CartRenderer) *RemoveDiscountUseCase {
	return &RemoveDiscountUseCase{store: store, renderer: renderer}
}

// Execute vuelve el carrito al descuento por defecto (0%)
func (uc *RemoveDiscountUseCase) Execute(sessionID string) (*response.CartState, error) {
	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		cart.RemoveDiscount()

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Info("Descuento eliminado"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
