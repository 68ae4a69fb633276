package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/shared/infrastructure/middleware"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/request"
	"github.com/PaulGerman23/motoshopV2/src/ticket/application/usecase"
	"github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
)

// TicketController maneja las peticiones HTTP de tickets
type TicketController struct {
	saveTicketUC     *usecase.SaveTicketUseCase
	listTicketsUC    *usecase.ListTicketsUseCase
	recoverTicketUC  *usecase.RecoverTicketUseCase
	cancelTicketUC   *usecase.CancelTicketUseCase
	finalizeTicketUC *usecase.FinalizeTicketUseCase
}

// NewTicketController crea una nueva instancia del controlador
func NewTicketController(
	saveTicketUC *usecase.SaveTicketUseCase,
	listTicketsUC *usecase.ListTicketsUseCase,
	recoverTicketUC *usecase.RecoverTicketUseCase,
	cancelTicketUC *usecase.CancelTicketUseCase,
	finalizeTicketUC *usecase.FinalizeTicketUseCase,
) *TicketController {
	return &TicketController{
		saveTicketUC:     saveTicketUC,
		listTicketsUC:    listTicketsUC,
		recoverTicketUC:  recoverTicketUC,
		cancelTicketUC:   cancelTicketUC,
		finalizeTicketUC: finalizeTicketUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *TicketController) RegisterRoutes(router *gin.RouterGroup) {
	tickets := router.Group("/tickets")
	{
		tickets.POST("", c.SaveTicket)
		tickets.GET("", c.ListTickets)
		tickets.POST("/:ticket_id/recover", c.RecoverTicket)
		tickets.POST("/:ticket_id/cancel", c.CancelTicket)
		tickets.POST("/:ticket_id/finalize", c.FinalizeTicket)
	}

	log.Println("Rutas Ticket disponibles:")
	log.Println("  POST   /api/v1/tickets")
	log.Println("  GET    /api/v1/tickets")
	log.Println("  POST   /api/v1/tickets/:ticket_id/recover")
	log.Println("  POST   /api/v1/tickets/:ticket_id/cancel")
	log.Println("  POST   /api/v1/tickets/:ticket_id/finalize")
}

// respondTicketError traduce los errores de la sincronización de
// tickets a status HTTP. El mensaje de un RemoteError viene del store
// y se muestra tal cual; una falla de conectividad siempre sale con el
// mensaje genérico.
func respondTicketError(ctx *gin.Context, err error) {
	var validation *apperrors.Validation
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validation.Message,
			"aviso":   notice.Danger(validation.Message),
		})
		return
	}

	var remote *client.RemoteError
	if errors.As(err, &remote) {
		ctx.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   remote.Message,
			"aviso":   notice.Danger(remote.Message),
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrTicketStoreDown):
		log.Printf("⚠️ Ticket store inaccesible: %v", err)
		msg := "Error al conectar con el servidor"
		ctx.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   msg,
			"aviso":   notice.Danger(msg),
		})
	case errors.Is(err, entity.ErrTicketNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Ticket no encontrado",
		})
	case errors.Is(err, entity.ErrTicketNotPending):
		ctx.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "El ticket ya no está pendiente",
		})
	case errors.Is(err, entity.ErrEmptyCart):
		msg := "El carrito está vacío. Agregue al menos un producto."
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   msg,
			"aviso":   notice.Warning(msg),
		})
	case errors.Is(err, entity.ErrNonPositiveTotal):
		msg := "El total debe ser mayor a 0"
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   msg,
			"aviso":   notice.Warning(msg),
		})
	case errors.Is(err, entity.ErrConfirmRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Debe confirmar la acción",
		})
	default:
		log.Printf("Error en operación de ticket: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Error interno",
		})
	}
}

func ticketIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ticket_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid ticket_id format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// SaveTicket guarda el carrito de la sesión como ticket pendiente
func (c *TicketController) SaveTicket(ctx *gin.Context) {
	var req request.SaveTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	saved, err := c.saveTicketUC.Execute(ctx.Request.Context(), middleware.SessionID(ctx), middleware.CSRFToken(ctx), &req)
	if err != nil {
		respondTicketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"ticket":  saved,
	})
}

// ListTickets lista los tickets pendientes
func (c *TicketController) ListTickets(ctx *gin.Context) {
	list, err := c.listTicketsUC.Execute(ctx.Request.Context())
	if err != nil {
		respondTicketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"tickets": list.Tickets,
		"html":    list.HTML,
	})
}

// RecoverTicket trae un ticket pendiente al carrito de la sesión
func (c *TicketController) RecoverTicket(ctx *gin.Context) {
	ticketID, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	state, err := c.recoverTicketUC.Execute(ctx.Request.Context(), middleware.SessionID(ctx), ticketID)
	if err != nil {
		respondTicketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"carrito": state,
	})
}

// CancelTicket cancela un ticket pendiente
func (c *TicketController) CancelTicket(ctx *gin.Context) {
	ticketID, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	var req request.CancelTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.cancelTicketUC.Execute(ctx.Request.Context(), middleware.SessionID(ctx), middleware.CSRFToken(ctx), ticketID, &req); err != nil {
		respondTicketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"aviso":   notice.Info("Ticket cancelado"),
	})
}

// FinalizeTicket finaliza un ticket pendiente como venta
func (c *TicketController) FinalizeTicket(ctx *gin.Context) {
	ticketID, ok := ticketIDParam(ctx)
	if !ok {
		return
	}

	var req request.FinalizeTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	sale, err := c.finalizeTicketUC.Execute(ctx.Request.Context(), middleware.SessionID(ctx), middleware.CSRFToken(ctx), ticketID, &req)
	if err != nil {
		respondTicketError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"venta":   sale,
	})
}
