package usecase

import (
	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// SetQuantityUseCase caso de uso para cambiar la cantidad de una línea
type SetQuantityUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewSetQuantityUseCase crea una nueva instancia del caso de uso
func NewSetQuantityUseCase(store *store.SessionStore, renderer response.CartRenderer) *SetQuantityUseCase {
	return &SetQuantityUseCase{store: store, renderer: renderer}
}

// Execute actualiza la cantidad de la línea indicada por índice
func (uc *SetQuantityUseCase) Execute(sessionID string, index int, req *request.SetQuantityRequest) (*response.CartState, error) {
	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		// El stock para validar es el guardado en la línea al momento del alta
		if index < 0 || index >= len(cart.Items) {
			return entity.ErrItemIndexOutOfRange
		}

		quantity, result := validator.Quantity(req.Quantity, cart.Items[index].AvailableStock)
		if !result.Valid {
			return apperrors.NewValidation(result.Message)
		}

		if err := cart.SetQuantity(index, quantity); err != nil {
			return err
		}

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Success("Cantidad actualizada"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
