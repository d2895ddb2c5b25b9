package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kanvah/storefront-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

// expireRecorder counts EXPIRE commands on top of the in-process store.
type expireRecorder struct {
	*Memory
	keys []string
}

func (r *expireRecorder) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	r.keys = append(r.keys, key)
	return r.Memory.Expire(ctx, key, ttl)
}

func TestFixedWindowAllow(t *testing.T) {
	ctx := context.Background()
	mock := &expireRecorder{Memory: NewMemory()}
	client := NewWithCmdable(mock)

	allowed, count, err := client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatalf("expected allowed on first request")
	}
	if count != 1 {
		t.Fatalf("expected counter 1 got %d", count)
	}
	if len(mock.keys) != 1 {
		t.Fatalf("expected expire for first increment")
	}

	allowed, count, err = client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed || count != 2 {
		t.Fatalf("unexpected second call state allowed=%v count=%d", allowed, count)
	}
	if len(mock.keys) != 1 {
		t.Fatalf("expire should not be set again")
	}

	allowed, _, err = client.FixedWindowAllow(ctx, "test-scope", 2, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Fatalf("expected limit reached")
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	client := NewWithCmdable(NewMemory())

	key := client.CartSessionKey("abc")
	if err := client.Set(ctx, key, `{"items":[]}`, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `{"items":[]}` {
		t.Fatalf("unexpected value %q", got)
	}
	if err := client.Del(ctx, key); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := client.Get(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUninitializedClient(t *testing.T) {
	client := &Client{}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on nil raw client should be a no-op, got %v", err)
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.RateLimitKey("scope"); got != "kanvah:rate_limit:scope" {
		t.Fatalf("unexpected rate limit key %s", got)
	}
	if got := client.AccessSessionKey("jti"); got != "kanvah:session:access:jti" {
		t.Fatalf("unexpected access session key %s", got)
	}
	if got := client.CartSessionKey(" sess "); got != "kanvah:cart_session:sess" {
		t.Fatalf("unexpected cart session key %s", got)
	}
	if got := client.CartSessionKey(""); got != "kanvah:cart_session" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}

	staging := &Client{namespace: namespaceOrDefault(" kanvah-staging: ")}
	if got := staging.CartSessionKey("sess"); got != "kanvah-staging:cart_session:sess" {
		t.Fatalf("unexpected namespaced key %s", got)
	}
	if got := namespaceOrDefault(""); got != DefaultNamespace {
		t.Fatalf("expected default namespace, got %s", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 7, DialTimeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.DB != 2 || opts.PoolSize != 7 || opts.DialTimeout != time.Second {
		t.Fatalf("unexpected options %+v", opts)
	}

	opts, err = optionsFromConfig(config.RedisConfig{Address: "cache:6379", DB: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache:6379" || opts.DB != 3 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestMemoryExpiresKeys(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mem.now = func() time.Time { return now }
	client := NewWithCmdable(mem)

	if err := client.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if n := mem.Del(ctx, "missing").Val(); n != 0 {
		t.Fatalf("expected 0 deletions, got %d", n)
	}

	now = now.Add(2 * time.Minute)
	if _, err := client.Get(ctx, "k"); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected expired key to be gone, got %v", err)
	}
}
