package usecase

import (
	"log"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// AddItemUseCase caso de uso para agregar un producto al carrito
type AddItemUseCase struct {
	store    *store.SessionStore
	renderer response.CartRenderer
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(store *store.SessionStore, renderer response.CartRenderer) *AddItemUseCase {
	return &AddItemUseCase{store: store, renderer: renderer}
}

// Execute agrega el producto al carrito de la sesión
func (uc *AddItemUseCase) Execute(sessionID string, req *request.AddItemRequest) (*response.CartState, error) {
	// 1. Normalizar cantidad y precio (llegan como texto del formulario)
	quantity, result := validator.Quantity(req.Quantity, req.AvailableStock)
	if !result.Valid {
		return nil, apperrors.NewValidation(result.Message)
	}

	price, result := validator.Price(req.UnitPrice)
	if !result.Valid {
		return nil, apperrors.NewValidation(result.Message)
	}

	// 2. Agregar la línea bajo el lock de la sesión
	var state *response.CartState
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		if err := cart.AddItem(req.ProductID, req.Description, price, req.AvailableStock, quantity); err != nil {
			return err
		}

		log.Printf("🛒 Producto %s agregado al carrito (cantidad: %d)", req.ProductID, quantity)

		var buildErr error
		state, buildErr = response.NewCartState(cart, uc.renderer, notice.Success("Producto agregado al carrito"))
		return buildErr
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
