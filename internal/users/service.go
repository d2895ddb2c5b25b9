package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/address"
	"github.com/kanvah/storefront-backend/internal/repo"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/types"
)

var ErrUserNotFound = pkgerrors.New(pkgerrors.CodeNotFound, "user not found")

// Service covers account operations for an already authenticated user.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	Me(ctx context.Context, id uuid.UUID) (*Profile, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, addr types.Address) (*Profile, error)
	RecordPurchase(ctx context.Context, id uuid.UUID, productIDs []int) error
}

type store interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, addr types.Address) error
	AddPurchases(ctx context.Context, id uuid.UUID, productIDs []int) (types.IDList, error)
}

type service struct {
	repo store
}

func NewService(r store) (Service, error) {
	if r == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{repo: r}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) Me(ctx context.Context, id uuid.UUID) (*Profile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProfile(user), nil
}

func (s *service) UpdateAddress(ctx context.Context, id uuid.UUID, addr types.Address) (*Profile, error) {
	clean, err := address.Validate(addr)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAddress(ctx, id, clean); err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save address")
	}
	return s.Me(ctx, id)
}

// RecordPurchase adds the products to the user's history, making them reviewable.
func (s *service) RecordPurchase(ctx context.Context, id uuid.UUID, productIDs []int) error {
	if len(productIDs) == 0 {
		return nil
	}
	if _, err := s.repo.AddPurchases(ctx, id, productIDs); err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record purchase")
	}
	return nil
}
