package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/view"
	"github.com/PaulGerman23/motoshopV2/src/sales/infrastructure/cache"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/request"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

const sesionPrueba = "sesion-test"

func cartConItem(t *testing.T, s *store.SessionStore) {
	t.Helper()
	err := s.WithCart(sesionPrueba, func(cart *cartEntity.Cart) error {
		return cart.AddItem("MOT-001", "Casco integral", decimal.RequireFromString("60.00"), 10, 2)
	})
	require.NoError(t, err)
}

func itemsEnCarrito(t *testing.T, s *store.SessionStore) int {
	t.Helper()
	var n int
	require.NoError(t, s.WithCart(sesionPrueba, func(cart *cartEntity.Cart) error {
		n = cart.TotalItems()
		return nil
	}))
	return n
}

func TestSaveTicketVaciaElCarritoAlConfirmar(t *testing.T) {
	ticketID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tickets", r.URL.Path)
		assert.Equal(t, "token-csrf", r.Header.Get("X-CSRF-Token"))

		var payload client.CreateTicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Len(t, payload.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"ticket": map[string]interface{}{
				"id":            ticketID,
				"codigo_ticket": "TCK-0042",
				"total":         "120.00",
			},
		})
	}))
	defer server.Close()

	s := store.NewSessionStore()
	cartConItem(t, s)

	uc := NewSaveTicketUseCase(s, client.NewTicketClientWithURL(server.URL), view.NewRenderer())
	saved, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", &request.SaveTicketRequest{})
	require.NoError(t, err)

	assert.Equal(t, "TCK-0042", saved.Code)
	assert.Equal(t, ticketID, saved.TicketID)
	assert.Equal(t, 0, itemsEnCarrito(t, s))
}

func TestSaveTicketCarritoVacio(t *testing.T) {
	s := store.NewSessionStore()
	uc := NewSaveTicketUseCase(s, client.NewTicketClientWithURL("http://127.0.0.1:0"), view.NewRenderer())

	_, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", &request.SaveTicketRequest{})
	assert.ErrorIs(t, err, entity.ErrEmptyCart)
}

func TestSaveTicketFallaRemotaDejaElCarritoIntacto(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Límite de tickets pendientes alcanzado",
		})
	}))
	defer server.Close()

	s := store.NewSessionStore()
	cartConItem(t, s)

	uc := NewSaveTicketUseCase(s, client.NewTicketClientWithURL(server.URL), view.NewRenderer())
	_, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", &request.SaveTicketRequest{})

	var remoto *client.RemoteError
	require.ErrorAs(t, err, &remoto)
	assert.Equal(t, "Límite de tickets pendientes alcanzado", remoto.Message)
	assert.Equal(t, 1, itemsEnCarrito(t, s))
}

func TestRecoverTicketReemplazaElCarrito(t *testing.T) {
	ticketID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tickets/"+ticketID.String(), r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"ticket": map[string]interface{}{
				"id":            ticketID,
				"codigo_ticket": "TCK-0007",
				"estado":        "pendiente",
				"productos": []map[string]interface{}{
					{"producto_id": "MOT-009", "descripcion": "Cadena 520", "precio": "80.00", "cantidad": 1, "stock": 4, "subtotal": "80.00"},
				},
				"descuento": map[string]interface{}{"tipo": "porcentaje", "valor": "0"},
			},
		})
	}))
	defer server.Close()

	s := store.NewSessionStore()
	cartConItem(t, s)

	uc := NewRecoverTicketUseCase(s, client.NewTicketClientWithURL(server.URL), view.NewRenderer())
	state, err := uc.Execute(context.Background(), sesionPrueba, ticketID)
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, "MOT-009", state.Items[0].ProductID)

	require.NoError(t, s.WithCart(sesionPrueba, func(cart *cartEntity.Cart) error {
		require.NotNil(t, cart.TicketID)
		assert.Equal(t, ticketID, *cart.TicketID)
		return nil
	}))
}

func TestRecoverTicketNoPendiente(t *testing.T) {
	ticketID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"ticket": map[string]interface{}{
				"id":            ticketID,
				"codigo_ticket": "TCK-0008",
				"estado":        "cancelado",
			},
		})
	}))
	defer server.Close()

	s := store.NewSessionStore()
	cartConItem(t, s)

	uc := NewRecoverTicketUseCase(s, client.NewTicketClientWithURL(server.URL), view.NewRenderer())
	_, err := uc.Execute(context.Background(), sesionPrueba, ticketID)

	assert.ErrorIs(t, err, entity.ErrTicketNotPending)
	// El carrito actual no se toca
	assert.Equal(t, 1, itemsEnCarrito(t, s))
}

func TestListTickets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pendiente", r.URL.Query().Get("estado"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tickets": []map[string]interface{}{
				{"id": uuid.New(), "codigo_ticket": "TCK-0001", "fecha_creacion": "2025-03-07T09:15:00Z", "total": "350.00", "items_count": 3},
			},
		})
	}))
	defer server.Close()

	uc := NewListTicketsUseCase(client.NewTicketClientWithURL(server.URL), view.NewRenderer())
	list, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, list.Tickets, 1)
	assert.Equal(t, "TCK-0001", list.Tickets[0].Code)
	assert.Contains(t, list.HTML, "TCK-0001")
}

func TestCancelTicketSinConfirmacion(t *testing.T) {
	uc := NewCancelTicketUseCase(store.NewSessionStore(), client.NewTicketClientWithURL("http://127.0.0.1:0"))

	err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", uuid.New(), &request.CancelTicketRequest{Confirm: false})
	assert.ErrorIs(t, err, entity.ErrConfirmRequired)
}

func TestCancelTicketVaciaElCarritoLigado(t *testing.T) {
	ticketID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tickets/"+ticketID.String()+"/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	s := store.NewSessionStore()
	cartConItem(t, s)
	require.NoError(t, s.WithCart(sesionPrueba, func(cart *cartEntity.Cart) error {
		cart.TicketID = &ticketID
		return nil
	}))

	uc := NewCancelTicketUseCase(s, client.NewTicketClientWithURL(server.URL))
	require.NoError(t, uc.Execute(context.Background(), sesionPrueba, "token-csrf", ticketID, &request.CancelTicketRequest{Confirm: true}))

	assert.Equal(t, 0, itemsEnCarrito(t, s))
}

func ticketStoreParaFinalizar(t *testing.T, ticketID uuid.UUID, saleID uuid.UUID) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"ticket": map[string]interface{}{
					"id":            ticketID,
					"codigo_ticket": "TCK-0010",
					"estado":        "pendiente",
					"productos": []map[string]interface{}{
						{"producto_id": "MOT-001", "descripcion": "Casco", "precio": "50.00", "cantidad": 2, "stock": 10, "subtotal": "100.00"},
					},
					"descuento": map[string]interface{}{"tipo": "porcentaje", "valor": "0"},
				},
			})
		case r.Method == http.MethodPost:
			assert.Equal(t, "/api/v1/tickets/"+ticketID.String()+"/finalize", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"venta": map[string]interface{}{
					"id":           saleID,
					"codigo_venta": "VTA-0100",
					"total":        "100.00",
				},
			})
		}
	}))
}

func TestFinalizeTicketEfectivoConVuelto(t *testing.T) {
	ticketID, saleID := uuid.New(), uuid.New()
	server := ticketStoreParaFinalizar(t, ticketID, saleID)
	defer server.Close()

	uc := NewFinalizeTicketUseCase(store.NewSessionStore(), client.NewTicketClientWithURL(server.URL), cache.NewPaymentMethodCache())
	sale, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", ticketID, &request.FinalizeTicketRequest{
		PaymentMethod:  "efectivo",
		AmountReceived: decimal.RequireFromString("150.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "VTA-0100", sale.Code)
	assert.Equal(t, "Efectivo", sale.PaymentMethodName)
	assert.True(t, sale.Change.Equal(decimal.RequireFromString("50.00")), "vuelto: %s", sale.Change)
	assert.Equal(t, "/ventas/detalle/"+saleID.String(), sale.RedirectURL)
}

func TestFinalizeTicketMixtoNoSuma(t *testing.T) {
	ticketID := uuid.New()
	server := ticketStoreParaFinalizar(t, ticketID, uuid.New())
	defer server.Close()

	uc := NewFinalizeTicketUseCase(store.NewSessionStore(), client.NewTicketClientWithURL(server.URL), cache.NewPaymentMethodCache())
	_, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", ticketID, &request.FinalizeTicketRequest{
		PaymentMethod: "mixto",
		CashAmount:    decimal.RequireFromString("60.00"),
		CardAmount:    decimal.RequireFromString("39.99"),
	})

	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Message, "La suma debe ser igual al total")
}

func TestFinalizeTicketMetodoInvalido(t *testing.T) {
	uc := NewFinalizeTicketUseCase(store.NewSessionStore(), client.NewTicketClientWithURL("http://127.0.0.1:0"), cache.NewPaymentMethodCache())

	_, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", uuid.New(), &request.FinalizeTicketRequest{
		PaymentMethod: "cheque",
	})

	var validation *apperrors.Validation
	require.ErrorAs(t, err, &validation)
}

func TestFinalizeTicketStoreCaido(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // conexión rechazada

	uc := NewFinalizeTicketUseCase(store.NewSessionStore(), client.NewTicketClientWithURL(server.URL), cache.NewPaymentMethodCache())
	_, err := uc.Execute(context.Background(), sesionPrueba, "token-csrf", uuid.New(), &request.FinalizeTicketRequest{
		PaymentMethod: "debito",
	})

	assert.ErrorIs(t, err, entity.ErrTicketStoreDown)
}
