package view

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	cartEntity "github.com/PaulGerman23/motoshopV2/src/cart/domain/entity"
	ticketEntity "github.com/PaulGerman23/motoshopV2/src/ticket/domain/entity"
)

// Renderer genera los fragmentos HTML del carrito y del listado de
// tickets pendientes. El escape lo maneja html/template, así un nombre
// de producto con markup no rompe la tabla.
type Renderer struct {
	cartTmpl   *template.Template
	ticketTmpl *template.Template
}

const cartTemplate = `{{if .Items}}<table class="tabla-carrito">
<thead><tr><th>Producto</th><th>Precio</th><th>Cantidad</th><th>Subtotal</th><th></th></tr></thead>
<tbody>
{{range $i, $item := .Items}}<tr data-index="{{$i}}">
<td>{{$item.Description}}</td>
<td>{{money $item.UnitPrice}}</td>
<td><input type="number" class="cantidad-item" value="{{$item.Quantity}}" min="1" max="{{$item.AvailableStock}}" data-index="{{$i}}"></td>
<td>{{money $item.Subtotal}}</td>
<td><button class="btn-eliminar-item" data-index="{{$i}}">✕</button></td>
</tr>
{{end}}</tbody>
</table>
<div class="totales-carrito">
<p>Subtotal: <span id="subtotal">{{money .Subtotal}}</span></p>
{{if .HasDiscount}}<p>Descuento: <span id="descuento">-{{money .DiscountAmount}}</span></p>
{{end}}<p class="total">Total: <span id="total">{{money .Total}}</span></p>
</div>
{{else}}<p class="carrito-vacio">El carrito está vacío</p>
{{end}}`

const ticketListTemplate = `{{if .Tickets}}<table class="tabla-tickets">
<thead><tr><th>Código</th><th>Fecha</th><th>Items</th><th>Total</th><th></th></tr></thead>
<tbody>
{{range .Tickets}}<tr data-ticket-id="{{.ID}}">
<td>{{.Code}}</td>
<td>{{date .CreatedAt}}</td>
<td>{{.ItemCount}}</td>
<td>{{money .Total}}</td>
<td><button class="btn-recuperar-ticket" data-ticket-id="{{.ID}}">Recuperar</button>
<button class="btn-cancelar-ticket" data-ticket-id="{{.ID}}">Cancelar</button></td>
</tr>
{{end}}</tbody>
</table>
{{else}}<p class="sin-tickets">No hay tickets pendientes</p>
{{end}}`

// NewRenderer compila las plantillas. Panic en el arranque si una
// plantilla está mal formada.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": FormatMoney,
		"date":  FormatDate,
	}

	return &Renderer{
		cartTmpl:   template.Must(template.New("cart").Funcs(funcs).Parse(cartTemplate)),
		ticketTmpl: template.Must(template.New("tickets").Funcs(funcs).Parse(ticketListTemplate)),
	}
}

// FormatMoney formatea un monto con símbolo de peso y dos decimales
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatDate formatea la fecha en formato local dd/mm/aaaa hh:mm
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

type cartView struct {
	Items          []cartEntity.LineItem
	Subtotal       decimal.Decimal
	HasDiscount    bool
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// RenderCart genera el fragmento HTML de la tabla del carrito con sus
// totales
func (r *Renderer) RenderCart(cart *cartEntity.Cart) (string, error) {
	view := cartView{
		Items:          cart.Items,
		Subtotal:       cart.Subtotal(),
		HasDiscount:    !cart.Discount.IsZero(),
		DiscountAmount: cart.DiscountAmount(),
		Total:          cart.Total(),
	}

	var buf bytes.Buffer
	if err := r.cartTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTicketList genera el fragmento HTML del listado de tickets
// pendientes
func (r *Renderer) RenderTicketList(tickets []ticketEntity.TicketSummary) (string, error) {
	var buf bytes.Buffer
	if err := r.ticketTmpl.Execute(&buf, struct {
		Tickets []ticketEntity.TicketSummary
	}{tickets}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
