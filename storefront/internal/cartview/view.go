// Package cartview turns cart entries into the cart page: one line per entry
// and, for a non-empty cart, the order summary.
package cartview

import (
	"io"
	"text/template"

	"pavanxo/storefront/internal/cart"
)

const DeliveryFee = 50

type Line struct {
	ID            int64
	Name          string
	Image         string
	OriginalPrice int
	Price         int
	Quantity      int
	Subtotal      int
	Savings       int
	CanDecrement  bool
	CanIncrement  bool
}

type Summary struct {
	Subtotal    int
	Savings     int
	DeliveryFee int
	Total       int
}

// View is recomputed from scratch for every render. Summary is nil for an
// empty cart.
type View struct {
	Lines   []Line
	Summary *Summary
	Count   int
	Empty   bool
}

func Build(items []cart.Item) View {
	if len(items) == 0 {
		return View{Lines: []Line{}, Empty: true}
	}

	lines := make([]Line, 0, len(items))
	for _, it := range items {
		_, canDec := cart.Step(it.Quantity, -1)
		_, canInc := cart.Step(it.Quantity, 1)
		lines = append(lines, Line{
			ID:            it.ID,
			Name:          it.Name,
			Image:         it.Image,
			OriginalPrice: it.OriginalPrice,
			Price:         it.Price,
			Quantity:      it.Quantity,
			Subtotal:      it.Subtotal(),
			Savings:       it.Savings(),
			CanDecrement:  canDec,
			CanIncrement:  canInc,
		})
	}

	subtotal := cart.TotalPrice(items)
	return View{
		Lines: lines,
		Summary: &Summary{
			Subtotal:    subtotal,
			Savings:     cart.TotalSavings(items),
			DeliveryFee: DeliveryFee,
			Total:       subtotal + DeliveryFee,
		},
		Count: cart.TotalCount(items),
	}
}

var pageTmpl = template.Must(template.New("cart").Parse(
	`{{if .Empty}}Your cart is empty.
Browse the menu and add something tasty.
{{else}}Cart ({{.Count}} items)
{{range .Lines}}
[{{.ID}}] {{.Name}}
    ₹{{.OriginalPrice}} -> ₹{{.Price}}  {{if .CanDecrement}}[-]{{else}}[ ]{{end}} {{.Quantity}} {{if .CanIncrement}}[+]{{else}}[ ]{{end}}  remove: {{.ID}}
    Subtotal: ₹{{.Subtotal}}  You save: ₹{{.Savings}}
{{end}}
Order Summary
  Subtotal:     ₹{{.Summary.Subtotal}}
  You save:     ₹{{.Summary.Savings}}
  Delivery Fee: ₹{{.Summary.DeliveryFee}}
  Total:        ₹{{.Summary.Total}}
{{end}}`))

func Render(w io.Writer, v View) error {
	return pageTmpl.Execute(w, v)
}

type Renderer struct {
	Out io.Writer
}

// Refresh re-renders the whole cart from items.
func (r Renderer) Refresh(items []cart.Item) error {
	return Render(r.Out, Build(items))
}
