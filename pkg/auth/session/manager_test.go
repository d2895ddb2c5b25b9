package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/pkg/config"
	redisclient "github.com/kanvah/storefront-backend/pkg/redis"
)

func newTestManager(t *testing.T) (*Manager, *redisclient.Client) {
	t.Helper()
	client := redisclient.NewInMemory()
	manager, err := NewManager(client, config.JWTConfig{ExpirationMinutes: 15, RefreshTokenTTLMinutes: 60})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return manager, client
}

func TestNewManagerValidatesTTL(t *testing.T) {
	client := redisclient.NewInMemory()
	if _, err := NewManager(nil, config.JWTConfig{RefreshTokenTTLMinutes: 60}); err == nil {
		t.Fatal("expected nil client error")
	}
	if _, err := NewManager(client, config.JWTConfig{ExpirationMinutes: 60, RefreshTokenTTLMinutes: 30}); err == nil {
		t.Fatal("expected refresh ttl shorter than access ttl to fail")
	}
}

func TestManagerGenerateAndRotate(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()
	userID := uuid.New()
	accessID := "access-123"

	token, err := manager.Generate(ctx, userID, accessID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	ok, err := manager.HasSession(ctx, accessID)
	if err != nil || !ok {
		t.Fatalf("expected active session, ok=%v err=%v", ok, err)
	}

	if _, _, _, err := manager.Rotate(ctx, accessID, "wrong"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected invalid refresh token error, got %v", err)
	}

	newAccessID, newToken, gotUser, err := manager.Rotate(ctx, accessID, token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if gotUser != userID {
		t.Fatalf("expected user %s, got %s", userID, gotUser)
	}
	if newToken == token || newAccessID == accessID {
		t.Fatal("expected fresh access id and token")
	}
	if ok, _ := manager.HasSession(ctx, accessID); ok {
		t.Fatal("old access session left behind")
	}
	if ok, _ := manager.HasSession(ctx, newAccessID); !ok {
		t.Fatal("expected new access session")
	}
}

func TestManagerRevoke(t *testing.T) {
	manager, _ := newTestManager(t)
	ctx := context.Background()

	token, err := manager.Generate(ctx, uuid.New(), "access-9")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := manager.Revoke(ctx, "access-9"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, _, _, err := manager.Rotate(ctx, "access-9", token); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected revoked session to reject rotation, got %v", err)
	}
}

func TestManagerRejectsCorruptRecord(t *testing.T) {
	manager, client := newTestManager(t)
	ctx := context.Background()
	if err := client.Set(ctx, client.AccessSessionKey("bad"), "not-json", time.Minute); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, _, err := manager.Rotate(ctx, "bad", "whatever"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected invalid token for corrupt record, got %v", err)
	}
}
