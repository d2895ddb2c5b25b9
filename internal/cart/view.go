package cart

import "github.com/kanvah/storefront-backend/internal/catalog"

// LineView is the wire form of a line item.
type LineView struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	ColorHex  string `json:"color_hex,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

func (l LineItem) View() LineView {
	return LineView{
		ProductID: l.Product.ID,
		Name:      l.Product.Name,
		Image:     l.Product.Image,
		Size:      l.Size,
		Color:     l.Color,
		ColorHex:  catalog.ColorHex[l.Color],
		Quantity:  l.Quantity,
		UnitPrice: l.Product.Price.StringFixed(2),
		LineTotal: l.LineTotal().StringFixed(2),
	}
}

// Views renders every line in order.
func (c *Cart) Views() []LineView {
	out := make([]LineView, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.View())
	}
	return out
}

// SessionView is what GET /cart returns.
type SessionView struct {
	SessionID  string     `json:"session_id"`
	Items      []LineView `json:"items"`
	TotalItems int        `json:"total_items"`
	Subtotal   string     `json:"subtotal"`
}

func (s *Session) View() SessionView {
	return SessionView{
		SessionID:  s.ID,
		Items:      s.Cart.Views(),
		TotalItems: s.Cart.TotalItems(),
		Subtotal:   s.Cart.Subtotal().StringFixed(2),
	}
}
