package usecase

import (
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
)

// GetCartUseCase caso de uso para consultar el estado actual del carrito
type GetCartUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(store *store.SessionStore, renderer response.CartRenderer) *GetCartUseCase {
	return &GetCartUseCase{store: store, renderer: renderer}
}

// Execute retorna el estado del carrito de la sesión (lo crea vacío si
// es la primera operación)
func (uc *GetCartUseCase) Execute(sessionID string) (*response.CartState, error) {
	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, nil)
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
