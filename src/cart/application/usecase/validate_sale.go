package usecase

import (
	"log"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
)

// ValidateSaleUseCase caso de uso para la validación integral previa a
// finalizar la venta
type ValidateSaleUseCase struct {
	store *store.SessionStore
}

// NewValidateSaleUseCase crea una nueva instancia del caso de uso
func NewValidateSaleUseCase(store *store.SessionStore) *ValidateSaleUseCase {
	return &ValidateSaleUseCase{store: store}
}

// Execute corre todas las validaciones de la venta y retorna el reporte
// completo (no se corta en la primera violación)
func (uc *ValidateSaleUseCase) Execute(sessionID string, req *request.ValidateSaleRequest) (*validator.SaleReport, error) {
	var report validator.SaleReport
	err := uc.store.WithCart(sessionID, func(cart *entity.Cart) error {
		report = validator.Sale(validator.SaleInput{
			Cart:          cart,
			PaymentMethod: req.PaymentMethod,
			CashAmount:    req.CashAmount,
			CardAmount:    req.CardAmount,
			Customer:      req.Customer,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !report.Valid {
		log.Printf("⚠️ Validación de venta con %d errores", len(report.Errors))
	}

	return &report, nil
}
