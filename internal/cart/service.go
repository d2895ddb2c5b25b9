package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

type mutationRecorder interface {
	CartMutation(op string)
}

// Service applies cart operations to persisted sessions.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Session, error)
	UpdateQuantity(ctx context.Context, sessionID string, input UpdateQuantityInput) (*Session, error)
	RemoveItem(ctx context.Context, sessionID string, input RemoveItemInput) (*Session, error)
	Clear(ctx context.Context, sessionID string) (*Session, error)
}

// AddItemInput selects a product variant. Quantity defaults to 1.
type AddItemInput struct {
	ProductID int
	Size      string
	Color     string
	Quantity  int
}

// UpdateQuantityInput targets every line of the product unless Size and Color
// are both set, in which case only that line changes.
type UpdateQuantityInput struct {
	ProductID int
	Size      string
	Color     string
	Quantity  int
}

// RemoveItemInput follows the same addressing rules as UpdateQuantityInput.
type RemoveItemInput struct {
	ProductID int
	Size      string
	Color     string
}

type service struct {
	store    Store
	products productLookup
	metrics  mutationRecorder
}

// NewService builds a cart service. metrics may be nil.
func NewService(store Store, products productLookup, metrics mutationRecorder) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &service{store: store, products: products, metrics: metrics}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Session, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return sess, nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Session, error) {
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, pkgerrors.Validation("quantity must be positive")
	}

	product, err := s.products.Get(input.ProductID)
	if err != nil {
		return nil, err
	}
	size := normalizeOption(input.Size)
	color := normalizeOption(input.Color)
	if !product.HasSize(size) {
		return nil, pkgerrors.Validation(fmt.Sprintf("size %q is not available for %s", input.Size, product.Name)).
			WithDetails(map[string]any{"size": input.Size, "available": product.Sizes})
	}
	if !product.HasColor(color) {
		return nil, pkgerrors.Validation(fmt.Sprintf("color %q is not available for %s", input.Color, product.Name)).
			WithDetails(map[string]any{"color": input.Color, "available": product.Colors})
	}

	return s.mutate(ctx, sessionID, "add", func(sess *Session) error {
		return sess.Cart.AddQuantity(product, size, color, qty)
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, input UpdateQuantityInput) (*Session, error) {
	size, color, line, err := lineAddress(input.Size, input.Color)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, "set_quantity", func(sess *Session) error {
		if line {
			return sess.Cart.SetLineQuantity(input.ProductID, size, color, input.Quantity)
		}
		return sess.Cart.SetQuantity(input.ProductID, input.Quantity)
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, input RemoveItemInput) (*Session, error) {
	size, color, line, err := lineAddress(input.Size, input.Color)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, "remove", func(sess *Session) error {
		if line {
			sess.Cart.RemoveLine(input.ProductID, size, color)
			return nil
		}
		sess.Cart.Remove(input.ProductID)
		return nil
	})
}

// Clear discards the whole session: lines, coupon and shipping choice.
func (s *service) Clear(ctx context.Context, sessionID string) (*Session, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	if s.metrics != nil {
		s.metrics.CartMutation("clear")
	}
	return NewSession(sessionID), nil
}

func (s *service) mutate(ctx context.Context, sessionID, op string, fn func(*Session) error) (*Session, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	sess, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if err := fn(sess); err != nil {
		if errors.Is(err, ErrQuantityOverflow) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "quantity is too large")
		}
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	if s.metrics != nil {
		s.metrics.CartMutation(op)
	}
	return sess, nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.Validation("cart session is required")
	}
	return nil
}

// lineAddress decides between product-wide and line-addressed operations.
// Supplying only one of size or color is ambiguous and rejected.
func lineAddress(size, color string) (string, string, bool, error) {
	size, color = normalizeOption(size), normalizeOption(color)
	switch {
	case size == "" && color == "":
		return "", "", false, nil
	case size == "" || color == "":
		return "", "", false, pkgerrors.Validation("size and color must be provided together")
	default:
		return size, color, true, nil
	}
}

func normalizeOption(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
