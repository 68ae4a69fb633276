package entity

import (
	"github.com/shopspring/decimal"
)

// LineItem representa una línea del carrito: un producto con su cantidad.
// El subtotal nunca se asigna desde afuera, siempre se recalcula como
// unit_price × quantity.
type LineItem struct {
	ProductID      string          `json:"producto_id"`
	Description    string          `json:"descripcion"`
	UnitPrice      decimal.Decimal `json:"precio"`
	Quantity       int             `json:"cantidad"`
	AvailableStock int             `json:"stock"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// NewLineItem crea una línea validada. Invariante: 0 < quantity <= availableStock.
func NewLineItem(productID, description string, unitPrice decimal.Decimal, availableStock, quantity int) (*LineItem, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if availableStock < 0 {
		return nil, ErrInvalidStock
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > availableStock {
		return nil, ErrInsufficientStock
	}

	item := &LineItem{
		ProductID:      productID,
		Description:    description,
		UnitPrice:      unitPrice,
		Quantity:       quantity,
		AvailableStock: availableStock,
	}
	item.recalcSubtotal()
	return item, nil
}

// SetQuantity revalida la cantidad contra el stock guardado en la línea.
// Si la cantidad es inválida la línea queda intacta.
func (li *LineItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > li.AvailableStock {
		return ErrInsufficientStock
	}
	li.Quantity = quantity
	li.recalcSubtotal()
	return nil
}

func (li *LineItem) recalcSubtotal() {
	li.Subtotal = li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
