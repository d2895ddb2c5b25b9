package controllers

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kanvah/storefront-backend/api/middleware"
	"github.com/kanvah/storefront-backend/internal/users"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

type userLoader interface {
	Get(ctx context.Context, id uuid.UUID) (*users.User, error)
}

// viewer returns the signed-in user, or nil for anonymous requests and for
// tokens whose account no longer exists.
func viewer(ctx context.Context, loader userLoader) (*users.User, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, nil
	}
	user, err := loader.Get(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// requireViewer is viewer for routes behind Auth.
func requireViewer(ctx context.Context, loader userLoader) (*users.User, error) {
	user, err := viewer(ctx, loader)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return user, nil
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(middleware.UserIDFromContext(ctx))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	return id, nil
}
