package usecase

import (
	"log"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// ClearCartUseCase caso de uso para vaciar el carrito completo
type ClearCartUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewClearCartUseCase crea una nueva instancia del caso de uso
func NewClearCartUseCase(store *store.SessionStore, renderer response.CartRenderer) *ClearCartUseCase {
	return &ClearCartUseCase{store: store, renderer: renderer}
}

// Execute vacía el carrito; exige la confirmación explícita del operador
func (uc *ClearCartUseCase) Execute(sessionID string, req *request.ClearCartRequest) (*response.CartState, error) {
	if !req.Confirm {
		return nil, apperrors.NewValidation("Debe confirmar el vaciado del carrito")
	}

	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		cart.Clear()
		log.Printf("🔄 Carrito de la sesión %s vaciado", sessionID)

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Info("Carrito vaciado"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
