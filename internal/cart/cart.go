package cart

import (
	"errors"
	"math"

	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

// ErrQuantityOverflow is returned when a change would push the cart's item
// count past what an int can hold. The cart is left unchanged.
var ErrQuantityOverflow = errors.New("cart quantity overflow")

// LineItem is one (product, size, color) selection. Quantity is always >= 1.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price x quantity for the line.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l LineItem) matches(productID int, size, color string) bool {
	return l.Product.ID == productID && l.Size == size && l.Color == color
}

// Cart holds line items in insertion order. The zero value is an empty cart.
// A Cart is owned by a single session and is not safe for concurrent use.
type Cart struct {
	lines []LineItem
}

// Add increments the matching line or appends a new line with quantity 1.
func (c *Cart) Add(product catalog.Product, size, color string) error {
	return c.AddQuantity(product, size, color, 1)
}

// AddQuantity is Add for qty units at once. Non-positive qty is a no-op.
func (c *Cart) AddQuantity(product catalog.Product, size, color string, qty int) error {
	if qty <= 0 {
		return nil
	}
	if c.TotalItems() > math.MaxInt-qty {
		return ErrQuantityOverflow
	}
	for i := range c.lines {
		if c.lines[i].matches(product.ID, size, color) {
			c.lines[i].Quantity += qty
			return nil
		}
	}
	c.lines = append(c.lines, LineItem{Product: product, Size: size, Color: color, Quantity: qty})
	return nil
}

// Remove drops every line of the product regardless of size or color.
func (c *Cart) Remove(productID int) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// RemoveLine drops only the line keyed by (productID, size, color).
func (c *Cart) RemoveLine(productID int, size, color string) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if !l.matches(productID, size, color) {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// SetQuantity sets qty on every line of the product; qty <= 0 removes them.
func (c *Cart) SetQuantity(productID, qty int) error {
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	return c.setWhere(qty, func(l LineItem) bool { return l.Product.ID == productID })
}

// SetLineQuantity is SetQuantity narrowed to a single line.
func (c *Cart) SetLineQuantity(productID int, size, color string, qty int) error {
	if qty <= 0 {
		c.RemoveLine(productID, size, color)
		return nil
	}
	return c.setWhere(qty, func(l LineItem) bool { return l.matches(productID, size, color) })
}

// setWhere sets qty on the selected lines, refusing when the new item count
// would not fit in an int.
func (c *Cart) setWhere(qty int, selected func(LineItem) bool) error {
	rest, hits := 0, 0
	for _, l := range c.lines {
		if selected(l) {
			hits++
			continue
		}
		rest += l.Quantity
	}
	if hits == 0 {
		return nil
	}
	if qty > (math.MaxInt-rest)/hits {
		return ErrQuantityOverflow
	}
	for i := range c.lines {
		if selected(c.lines[i]) {
			c.lines[i].Quantity = qty
		}
	}
	return nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []LineItem {
	return append([]LineItem(nil), c.lines...)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Contains reports whether any line references the product.
func (c *Cart) Contains(productID int) bool {
	for _, l := range c.lines {
		if l.Product.ID == productID {
			return true
		}
	}
	return false
}

// TotalItems is the sum of quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of price x quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ProductIDs lists distinct product ids in first-seen order.
func (c *Cart) ProductIDs() []int {
	seen := make(map[int]struct{}, len(c.lines))
	out := make([]int, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.Product.ID]; ok {
			continue
		}
		seen[l.Product.ID] = struct{}{}
		out = append(out, l.Product.ID)
	}
	return out
}
