package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart representa el carrito de la sesión actual (Aggregate Root).
// Lista ordenada de líneas (orden de inserción, un solo entry por
// producto) más el descuento global activo. Vive solo en memoria:
// no se persiste hasta que se guarda como ticket.
type Cart struct {
	Items    []LineItem `json:"items"`
	Discount Discount   `json:"descuento"`

	// TicketID referencia al ticket pendiente recuperado, nil = borrador nuevo
	TicketID   *uuid.UUID `json:"ticket_id,omitempty"`
	CustomerID string     `json:"cliente_id,omitempty"`
	Note       string     `json:"observacion,omitempty"`
}

// NewCart crea un carrito vacío con descuento por defecto
func NewCart() *Cart {
	return &Cart{
		Items:    []LineItem{},
		Discount: NoDiscount(),
	}
}

// AddItem agrega una línea al final del carrito. Falla sin mutar si el
// producto ya está presente o si la cantidad es inválida.
func (c *Cart) AddItem(productID, description string, unitPrice decimal.Decimal, availableStock, quantity int) error {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return ErrDuplicateProduct
		}
	}

	item, err := NewLineItem(productID, description, unitPrice, availableStock, quantity)
	if err != nil {
		return err
	}

	c.Items = append(c.Items, *item)
	return nil
}

// SetQuantity cambia la cantidad de la línea en la posición dada.
// Revalida contra el stock guardado; si falla el carrito queda igual.
func (c *Cart) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrItemIndexOutOfRange
	}
	return c.Items[index].SetQuantity(quantity)
}

// RemoveItem elimina la línea en la posición dada preservando el orden
// relativo del resto.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.Items) {
		return ErrItemIndexOutOfRange
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	return nil
}

// Clear vacía el carrito y resetea el descuento al default. La
// confirmación es responsabilidad del caller (acción destructiva).
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.Discount = NoDiscount()
	c.TicketID = nil
	c.CustomerID = ""
	c.Note = ""
}

// ApplyDiscount valida y aplica el descuento global
func (c *Cart) ApplyDiscount(d Discount) error {
	if err := d.Validate(c.Subtotal()); err != nil {
		return err
	}
	c.Discount = d
	return nil
}

// RemoveDiscount vuelve al descuento por defecto
func (c *Cart) RemoveDiscount() {
	c.Discount = NoDiscount()
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems retorna el número de líneas
func (c *Cart) TotalItems() int {
	return len(c.Items)
}

// Subtotal suma de los subtotales de todas las líneas
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(item.Subtotal)
	}
	return subtotal
}

// DiscountAmount monto descontado según el descriptor activo
func (c *Cart) DiscountAmount() decimal.Decimal {
	return c.Discount.AmountOn(c.Subtotal())
}

// Total = max(0, subtotal - descuento). Nunca negativo, incluso con un
// descriptor viejo que exceda el subtotal actual.
func (c *Cart) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.DiscountAmount())
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}
