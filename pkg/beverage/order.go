package beverage

import (
	"fmt"
	"strings"
)

// Order is an ordered sequence of drinks. It exists to exercise a Factory;
// it carries no behavior of its own beyond accumulation and display.
type Order struct {
	drinks []Drink
}

// NewOrder returns an empty order.
func NewOrder() *Order {
	return &Order{}
}

// Add appends a drink to the order and returns the order for chaining.
func (o *Order) Add(d Drink) *Order {
	o.drinks = append(o.drinks, d)
	return o
}

// Drinks returns the drinks in the order they were added.
func (o *Order) Drinks() []Drink {
	return append([]Drink(nil), o.drinks...)
}

// Len returns the number of drinks in the order.
func (o *Order) Len() int {
	return len(o.drinks)
}

// Summary renders one line per drink: name, region, and spoon count for
// sweetened drinks.
func (o *Order) Summary() string {
	var b strings.Builder
	for i, d := range o.drinks {
		if i > 0 {
			b.WriteByte('\n')
		}
		if s := d.Sweetener(); s != nil {
			fmt.Fprintf(&b, "%s (%s, %d spoons)", d.Name(), d.Region(), s.Spoons())
		} else {
			fmt.Fprintf(&b, "%s (%s)", d.Name(), d.Region())
		}
	}
	return b.String()
}
