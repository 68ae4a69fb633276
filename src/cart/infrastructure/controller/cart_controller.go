package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PaulGerman23/motoshopV2/src/cart/application/request"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/response"
	"github.com/PaulGerman23/motoshopV2/src/cart/application/usecase"
	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/apperrors"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
	"github.com/PaulGerman23/motoshopV2/src/shared/infrastructure/middleware"
)

// CartController maneja las peticiones HTTP del carrito
type CartController struct {
	getCartUC        *usecase.GetCartUseCase
	addItemUC        *usecase.AddItemUseCase
	setQuantityUC    *usecase.SetQuantityUseCase
	removeItemUC     *usecase.RemoveItemUseCase
	clearCartUC      *usecase.ClearCartUseCase
	applyDiscountUC  *usecase.ApplyDiscountUseCase
	removeDiscountUC *usecase.RemoveDiscountUseCase
	validateSaleUC   *usecase.ValidateSaleUseCase
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(
	getCartUC *usecase.GetCartUseCase,
	addItemUC *usecase.AddItemUseCase,
	setQuantityUC *usecase.SetQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	clearCartUC *usecase.ClearCartUseCase,
	applyDiscountUC *usecase.ApplyDiscountUseCase,
	removeDiscountUC *usecase.RemoveDiscountUseCase,
	validateSaleUC *usecase.ValidateSaleUseCase,
) *CartController {
	return &CartController{
		getCartUC:        getCartUC,
		addItemUC:        addItemUC,
		setQuantityUC:    setQuantityUC,
		removeItemUC:     removeItemUC,
		clearCartUC:      clearCartUC,
		applyDiscountUC:  applyDiscountUC,
		removeDiscountUC: removeDiscountUC,
		validateSaleUC:   validateSaleUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.POST("/items", c.AddItem)
		cart.PUT("/items/:index", c.SetQuantity)
		cart.DELETE("/items/:index", c.RemoveItem)
		cart.POST("/clear", c.ClearCart)
		cart.POST("/discount", c.ApplyDiscount)
		cart.DELETE("/discount", c.RemoveDiscount)
		cart.POST("/validate", c.ValidateSale)
	}

	log.Println("Rutas Cart disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  PUT    /api/v1/cart/items/:index")
	log.Println("  DELETE /api/v1/cart/items/:index")
	log.Println("  POST   /api/v1/cart/clear")
	log.Println("  POST   /api/v1/cart/discount")
	log.Println("  DELETE /api/v1/cart/discount")
	log.Println("  POST   /api/v1/cart/validate")
}

// respondCartError traduce los errores de los casos de uso del carrito
// a status HTTP con su aviso para la UI
func respondCartError(ctx *gin.Context, err error) {
	var validation *apperrors.Validation
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   validation.Message,
			"aviso":   notice.Danger(validation.Message),
		})
		return
	}

	switch {
	case errors.Is(err, entity.ErrDuplicateProduct):
		msg := "El producto ya está en el carrito"
		ctx.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   msg,
			"aviso":   notice.Warning(msg),
		})
	case errors.Is(err, entity.ErrItemIndexOutOfRange):
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Producto no encontrado en el carrito",
		})
	case errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInsufficientStock),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrProductIDRequired),
		errors.Is(err, entity.ErrDescriptionRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	default:
		log.Printf("Error en operación de carrito: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Error interno",
		})
	}
}

func respondCartState(ctx *gin.Context, status int, state *response.CartState) {
	ctx.JSON(status, gin.H{
		"success": true,
		"carrito": state,
	})
}

// GetCart retorna el estado del carrito de la sesión
func (c *CartController) GetCart(ctx *gin.Context) {
	state, err := c.getCartUC.Execute(middleware.SessionID(ctx))
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// AddItem agrega un producto al carrito
func (c *CartController) AddItem(ctx *gin.Context) {
	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := c.addItemUC.Execute(middleware.SessionID(ctx), &req)
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusCreated, state)
}

// SetQuantity cambia la cantidad de una línea por su índice
func (c *CartController) SetQuantity(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "index must be a number",
		})
		return
	}

	var req request.SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := c.setQuantityUC.Execute(middleware.SessionID(ctx), index, &req)
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// RemoveItem elimina una línea por su índice
func (c *CartController) RemoveItem(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "index must be a number",
		})
		return
	}

	state, err := c.removeItemUC.Execute(middleware.SessionID(ctx), index)
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// ClearCart vacía el carrito (requiere confirmación en el body)
func (c *CartController) ClearCart(ctx *gin.Context) {
	var req request.ClearCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := c.clearCartUC.Execute(middleware.SessionID(ctx), &req)
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// ApplyDiscount aplica el descuento global del carrito
func (c *CartController) ApplyDiscount(ctx *gin.Context) {
	var req request.ApplyDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	state, err := c.applyDiscountUC.Execute(middleware.SessionID(ctx), &req)
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// RemoveDiscount quita el descuento global
func (c *CartController) RemoveDiscount(ctx *gin.Context) {
	state, err := c.removeDiscountUC.Execute(middleware.SessionID(ctx))
	if err != nil {
		respondCartError(ctx, err)
		return
	}
	respondCartState(ctx, http.StatusOK, state)
}

// ValidateSale corre la validación integral previa a la venta. El
// reporte siempre sale con 200: los errores de validación son datos
// para la UI, no fallas HTTP.
func (c *CartController) ValidateSale(ctx *gin.Context) {
	var req request.ValidateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	report, err := c.validateSaleUC.Execute(middleware.SessionID(ctx), &req)
	if err != nil {
		respondCartError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"reporte": report,
	})
}
