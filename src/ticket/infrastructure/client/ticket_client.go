package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/shared/infrastructure/metrics"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
)

// RemoteError error de negocio reportado por el ticket store
// (success=false en el envelope). El mensaje viene del servidor y se
// muestra tal cual al usuario.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// CreateTicketRequest payload para guardar un ticket (venta en espera)
type CreateTicketRequest struct {
	CustomerID string                `json:"cliente_id,omitempty"`
	Items      []cartEntity.LineItem `json:"productos"`
	Discount   cartEntity.Discount   `json:"descuento"`
	Note       string                `json:"observacion,omitempty"`
}

// CreatedTicket respuesta de creación: id y código emitidos por el store
type CreatedTicket struct {
	ID    uuid.UUID       `json:"id"`
	Code  string          `json:"codigo_ticket"`
	Total decimal.Decimal `json:"total"`
}

// FinalizeTicketRequest payload para finalizar un ticket como venta
type FinalizeTicketRequest struct {
	PaymentMethod string          `json:"tipo_pago"`
	CashAmount    decimal.Decimal `json:"monto_efectivo,omitempty"`
	CardAmount    decimal.Decimal `json:"monto_tarjeta,omitempty"`
}

// FinalizedSale respuesta de finalización: la venta inmutable creada
type FinalizedSale struct {
	ID    uuid.UUID       `json:"id"`
	Code  string          `json:"codigo_venta"`
	Total decimal.Decimal `json:"total"`
}

// envelope forma común de las respuestas del ticket store
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Ticket  json.RawMessage `json:"ticket,omitempty"`
	Tickets json.RawMessage `json:"tickets,omitempty"`
	Sale    json.RawMessage `json:"venta,omitempty"`
}

// TicketClient cliente HTTP del ticket store remoto. El store es el
// dueño de todo el estado persistido; acá solo viajan snapshots.
type TicketClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTicketClient crea una nueva instancia del cliente
func NewTicketClient() *TicketClient {
	baseURL := os.Getenv("TICKET_STORE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081" // Default para entorno local
	}

	return &TicketClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// NewTicketClientWithURL crea un cliente apuntando a una URL explícita (tests)
func NewTicketClientWithURL(baseURL string) *TicketClient {
	return &TicketClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

// do ejecuta la request, lee el body y abre el envelope. Un error de
// transporte se reporta como ErrTicketStoreDown (el caller muestra el
// mensaje genérico de conectividad); success=false se reporta como
// RemoteError con el mensaje del servidor.
func (c *TicketClient) do(req *http.Request, operation string) (*envelope, error) {
	metrics.TicketSyncRequests.WithLabelValues(operation).Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("%w: %v", entity.ErrTicketStoreDown, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("%w: error reading response", entity.ErrTicketStoreDown)
	}

	if resp.StatusCode == http.StatusNotFound {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, entity.ErrTicketNotFound
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("ticket store returned status %d: %s", resp.StatusCode, string(body))
	}

	if !env.Success && env.Error != "" {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, &RemoteError{Message: env.Error}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		metrics.TicketSyncFailures.WithLabelValues(operation).Inc()
		return nil, fmt.Errorf("ticket store returned status %d: %s", resp.StatusCode, string(body))
	}

	return &env, nil
}

func (c *TicketClient) newRequest(ctx context.Context, method, url, csrfToken string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Toda llamada mutante lleva el token anti-forgery de la sesión
	if csrfToken != "" {
		req.Header.Set("X-CSRF-Token", csrfToken)
	}

	return req, nil
}

// Create guarda un snapshot del carrito como ticket pendiente.
// Retorna el id y el código emitidos por el store.
func (c *TicketClient) Create(ctx context.Context, csrfToken string, payload *CreateTicketRequest) (*CreatedTicket, error) {
	url := fmt.Sprintf("%s/api/v1/tickets", c.baseURL)

	req, err := c.newRequest(ctx, http.MethodPost, url, csrfToken, payload)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req, "create")
	if err != nil {
		return nil, err
	}

	var created CreatedTicket
	if err := json.Unmarshal(env.Ticket, &created); err != nil {
		return nil, fmt.Errorf("error unmarshalling ticket: %w", err)
	}

	return &created, nil
}

// ListPending retorna los resúmenes de tickets pendientes
func (c *TicketClient) ListPending(ctx context.Context) ([]entity.TicketSummary, error) {
	url := fmt.Sprintf("%s/api/v1/tickets?estado=pendiente", c.baseURL)

	req, err := c.newRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req, "list")
	if err != nil {
		return nil, err
	}

	var summaries []entity.TicketSummary
	if err := json.Unmarshal(env.Tickets, &summaries); err != nil {
		return nil, fmt.Errorf("error unmarshalling tickets: %w", err)
	}

	return summaries, nil
}

// Recover trae el snapshot completo de un ticket. No muta el estado
// pendiente del lado del store.
func (c *TicketClient) Recover(ctx context.Context, ticketID uuid.UUID) (*entity.TicketSnapshot, error) {
	url := fmt.Sprintf("%s/api/v1/tickets/%s", c.baseURL, ticketID)

	req, err := c.newRequest(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req, "recover")
	if err != nil {
		return nil, err
	}

	var snapshot entity.TicketSnapshot
	if err := json.Unmarshal(env.Ticket, &snapshot); err != nil {
		return nil, fmt.Errorf("error unmarshalling ticket snapshot: %w", err)
	}

	return &snapshot, nil
}

// Cancel cancela un ticket pendiente. El store es idempotente sobre un
// ticket ya cancelado.
func (c *TicketClient) Cancel(ctx context.Context, csrfToken string, ticketID uuid.UUID) error {
	url := fmt.Sprintf("%s/api/v1/tickets/%s/cancel", c.baseURL, ticketID)

	req, err := c.newRequest(ctx, http.MethodPost, url, csrfToken, struct{}{})
	if err != nil {
		return err
	}

	_, err = c.do(req, "cancel")
	return err
}

// Finalize convierte un ticket pendiente en una venta inmutable con su
// propio código
func (c *TicketClient) Finalize(ctx context.Context, csrfToken string, ticketID uuid.UUID, payload *FinalizeTicketRequest) (*FinalizedSale, error) {
	url := fmt.Sprintf("%s/api/v1/tickets/%s/finalize", c.baseURL, ticketID)

	req, err := c.newRequest(ctx, http.MethodPost, url, csrfToken, payload)
	if err != nil {
		return nil, err
	}

	env, err := c.do(req, "finalize")
	if err != nil {
		return nil, err
	}

	var sale FinalizedSale
	if err := json.Unmarshal(env.Sale, &sale); err != nil {
		return nil, fmt.Errorf("error unmarshalling sale: %w", err)
	}

	return &sale, nil
}
