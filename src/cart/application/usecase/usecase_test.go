package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/view"
	"github.com/PaulGerman23/motoshopV2/src/sales/domain/validator"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
)

const sesionPrueba = "sesion-test"

func agregarCasco(t *testing.T, s *store.SessionStore, renderer *view.Renderer) {
	t.Helper()
	_, err := NewAddItemUseCase(s, renderer).Execute(sesionPrueba, &request.AddItemRequest{
		ProductID:      "MOT-001",
		Description:    "Casco integral",
		UnitPrice:      "60.00",
		AvailableStock: 10,
		Quantity:       "2",
	})
	require.NoError(t, err)
}

func TestAddItemActualizaTotales(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()

	state, err := NewAddItemUseCase(s, renderer).Execute(sesionPrueba, &request.AddItemRequest{
		ProductID:      "MOT-001",
		Description:    "Casco integral",
		UnitPrice:      "60.00",
		AvailableStock: 10,
		Quantity:       "2",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, state.ItemCount)
	assert.True(t, state.Subtotal.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, state.Total.Equal(decimal.RequireFromString("120.00")))
	assert.Contains(t, state.HTML, "Casco integral")
	require.NotNil(t, state.Notice)
	assert.Equal(t, "success", state.Notice.Level)
}

func TestAddItemCantidadInvalida(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()

	casos := []struct {
		nombre   string
		cantidad string
		mensaje  string
	}{
		{"vacía", "", "Debe ingresar una cantidad"},
		{"no numérica", "abc", "La cantidad debe ser un número"},
		{"cero", "0", "La cantidad debe ser mayor a 0"},
		{"sobre stock", "11", "Stock insuficiente. Disponible: 10 unidades"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := NewAddItemUseCase(s, renderer).Execute(sesionPrueba, &request.AddItemRequest{
				ProductID:      "MOT-00X",
				Description:    "Guantes",
				UnitPrice:      "25.00",
				AvailableStock: 10,
				Quantity:       tc.cantidad,
			})

			var validation *apperrors.Validation
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.mensaje, validation.Message)
		})
	}
}

func TestSetQuantityRecalculaSubtotal(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	state, err := NewSetQuantityUseCase(s, renderer).Execute(sesionPrueba, 0, &request.SetQuantityRequest{Quantity: "5"})
	require.NoError(t, err)

	assert.True(t, state.Subtotal.Equal(decimal.RequireFromString("300.00")))
}

func TestSetQuantitySobreStock(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	_, err := NewSetQuantityUseCase(s, renderer).Execute(sesionPrueba, 0, &request.SetQuantityRequest{Quantity: "11"})

	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Stock insuficiente. Disponible: 10 unidades", validation.Message)
}

func TestRemoveItemDejaCarritoVacio(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	state, err := NewRemoveItemUseCase(s, renderer).Execute(sesionPrueba, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, state.ItemCount)
	assert.Contains(t, state.HTML, "El carrito está vacío")
}

func TestClearCartExigeConfirmacion(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	_, err := NewClearCartUseCase(s, renderer).Execute(sesionPrueba, &request.ClearCartRequest{Confirm: false})
	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)

	state, err := NewClearCartUseCase(s, renderer).Execute(sesionPrueba, &request.ClearCartRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, 0, state.ItemCount)
}

func TestApplyDiscountPorcentaje(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	state, err := NewApplyDiscountUseCase(s, renderer).Execute(sesionPrueba, &request.ApplyDiscountRequest{
		Kind:  "porcentaje",
		Value: "10",
	})
	require.NoError(t, err)

	assert.True(t, state.DiscountAmount.Equal(decimal.RequireFromString("12.00")))
	assert.True(t, state.Total.Equal(decimal.RequireFromString("108.00")))
}

func TestApplyDiscountMontoMayorAlSubtotal(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	_, err := NewApplyDiscountUseCase(s, renderer).Execute(sesionPrueba, &request.ApplyDiscountRequest{
		Kind:  "monto",
		Value: "150",
	})

	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "El descuento no puede ser mayor al subtotal", validation.Message)
}

func TestApplyDiscountValorNoNumerico(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	_, err := NewApplyDiscountUseCase(s, renderer).Execute(sesionPrueba, &request.ApplyDiscountRequest{
		Kind:  "porcentaje",
		Value: "diez",
	})

	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)
}

func TestRemoveDiscountVuelveAlTotalPleno(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	_, err := NewApplyDiscountUseCase(s, renderer).Execute(sesionPrueba, &request.ApplyDiscountRequest{
		Kind:  "porcentaje",
		Value: "50",
	})
	require.NoError(t, err)

	state, err := NewRemoveDiscountUseCase(s, renderer).Execute(sesionPrueba)
	require.NoError(t, err)

	assert.True(t, state.Total.Equal(decimal.RequireFromString("120.00")))
}

func TestValidateSaleReporteCompleto(t *testing.T) {
	s := store.NewSessionStore()

	// Carrito vacío + método inválido + DNI malo: junta todas las violaciones
	report, err := NewValidateSaleUseCase(s).Execute(sesionPrueba, &request.ValidateSaleRequest{
		PaymentMethod: "cheque",
		Customer:      validator.CustomerInput{NationalID: "12AB"},
	})
	require.NoError(t, err)

	assert.False(t, report.Valid)
	assert.GreaterOrEqual(t, len(report.Errors), 3)
}

func TestValidateSaleVentaValida(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	report, err := NewValidateSaleUseCase(s).Execute(sesionPrueba, &request.ValidateSaleRequest{
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.True(t, report.Total.Equal(decimal.RequireFromString("120.00")))
}

func TestSesionesAisladas(t *testing.T) {
	s, renderer := store.NewSessionStore(), view.NewRenderer()
	agregarCasco(t, s, renderer)

	state, err := NewGetCartUseCase(s, renderer).Execute("otra-sesion")
	require.NoError(t, err)

	assert.Equal(t, 0, state.ItemCount)
}
