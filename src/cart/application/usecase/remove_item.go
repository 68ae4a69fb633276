package usecase

import (
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// RemoveItemUseCase caso de uso para quitar una línea del carrito
type RemoveItemUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(store *store.SessionStore, renderer response.CartRenderer) *RemoveItemUseCase {
	return &RemoveItemUseCase{store: store, renderer: renderer}
}

// Execute elimina la línea indicada preservando el orden del resto
func (uc *RemoveItemUseCase) Execute(sessionID string, index int) (*response.CartState, error) {
	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		if err := cart.RemoveItem(index); err != nil {
			return err
		}

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Info("Producto eliminado del carrito"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
