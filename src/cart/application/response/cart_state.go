package response

import (
	"github.com/shopspring/decimal"

	"github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	"github.com/PaulGerman23/motoshopV2/src/shared/application/notice"
)

// CartState respuesta estándar de las operaciones del carrito: el
// detalle de líneas, los totales calculados, el fragmento HTML listo
// para insertar y el aviso para el usuario.
type CartState struct {
	Items          []entity.LineItem `json:"productos"`
	ItemCount      int               `json:"items_count"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Discount       entity.Discount   `json:"descuento"`
	DiscountAmount decimal.Decimal   `json:"monto_descuento"`
	Total          decimal.Decimal   `json:"total"`
	HTML           string            `json:"html"`
	Notice         *notice.Notice    `json:"aviso,omitempty"`
}

// CartRenderer renderiza el carrito como fragmento HTML
type CartRenderer interface {
	RenderCart(cart *entity.Cart) (string, error)
}

// NewCartState arma el estado a partir del carrito actual
func NewCartState(cart *entity.Cart, renderer CartRenderer, aviso *notice.Notice) (*CartState, error) {
	html, err := renderer.RenderCart(cart)
	if err != nil {
		return nil, err
	}

	return &CartState{
		Items:          cart.Items,
		ItemCount:      cart.TotalItems(),
		Subtotal:       cart.Subtotal(),
		Discount:       cart.Discount,
		DiscountAmount: cart.DiscountAmount(),
		Total:          cart.Total(),
		HTML:           html,
		Notice:         aviso,
	}, nil
}
