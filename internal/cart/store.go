package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/kanvah/storefront-backend/pkg/redis"
)

// Store persists sessions. Writes are last-writer-wins.
type Store interface {
	// Load returns the stored session, or a fresh empty one when none exists.
	Load(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartSessionKey(sessionID string) string
}

type productLookup interface {
	Get(id int) (catalog.Product, error)
}

// RedisStore keeps each session as a JSON blob under its own key.
type RedisStore struct {
	kv       kvStore
	products productLookup
	ttl      time.Duration
	now      func() time.Time
}

func NewRedisStore(kv kvStore, products productLookup, ttl time.Duration) (*RedisStore, error) {
	if kv == nil {
		return nil, fmt.Errorf("key-value store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	return &RedisStore{kv: kv, products: products, ttl: ttl, now: time.Now}, nil
}

type sessionRecord struct {
	Items          []lineRecord `json:"items"`
	CouponCode     string       `json:"coupon_code,omitempty"`
	ShippingMethod string       `json:"shipping_method"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type lineRecord struct {
	ProductID int    `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) (*Session, error) {
	raw, err := r.kv.Get(ctx, r.kv.CartSessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return NewSession(sessionID), nil
		}
		return nil, fmt.Errorf("loading cart session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decoding cart session: %w", err)
	}
	return r.hydrate(sessionID, rec), nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("session id required")
	}
	s.UpdatedAt = r.now().UTC()
	rec := sessionRecord{
		Items:          make([]lineRecord, 0),
		CouponCode:     s.CouponCode,
		ShippingMethod: s.ShippingMethod.String(),
		UpdatedAt:      s.UpdatedAt,
	}
	for _, l := range s.Cart.Lines() {
		rec.Items = append(rec.Items, lineRecord{ProductID: l.Product.ID, Size: l.Size, Color: l.Color, Quantity: l.Quantity})
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding cart session: %w", err)
	}
	if err := r.kv.Set(ctx, r.kv.CartSessionKey(s.ID), payload, r.ttl); err != nil {
		return fmt.Errorf("saving cart session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.kv.Del(ctx, r.kv.CartSessionKey(sessionID))
}

// hydrate rebuilds a session against the current catalog. Lines whose product
// has been withdrawn are dropped.
func (r *RedisStore) hydrate(sessionID string, rec sessionRecord) *Session {
	s := NewSession(sessionID)
	s.CouponCode = rec.CouponCode
	s.UpdatedAt = rec.UpdatedAt
	if method, err := enums.ParseShippingMethod(rec.ShippingMethod); err == nil {
		s.ShippingMethod = method
	}
	for _, item := range rec.Items {
		p, err := r.products.Get(item.ProductID)
		if err != nil {
			continue
		}
		// a line that would overflow the item count is dropped
		_ = s.Cart.AddQuantity(p, item.Size, item.Color, item.Quantity)
	}
	return s
}
