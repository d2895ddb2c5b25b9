package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanvah/storefront-backend/internal/address"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/logger"
	"github.com/kanvah/storefront-backend/pkg/types"
)

type stubUsersService struct {
	profile *users.Profile
	gotAddr types.Address
}

func (s *stubUsersService) Get(ctx context.Context, id uuid.UUID) (*users.User, error) {
	return nil, users.ErrUserNotFound
}

func (s *stubUsersService) Me(ctx context.Context, id uuid.UUID) (*users.Profile, error) {
	return s.profile, nil
}

func (s *stubUsersService) UpdateAddress(ctx context.Context, id uuid.UUID, addr types.Address) (*users.Profile, error) {
	s.gotAddr = addr
	clean, err := address.Validate(addr)
	if err != nil {
		return nil, err
	}
	p := *s.profile
	p.Address = &clean
	return &p, nil
}

func (s *stubUsersService) RecordPurchase(ctx context.Context, id uuid.UUID, productIDs []int) error {
	return nil
}

func TestMeRequiresUser(t *testing.T) {
	resp := httptest.NewRecorder()
	Me(&stubUsersService{}, logger.Nop()).ServeHTTP(resp, newRequest(http.MethodGet, "/api/v1/me", ""))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMeReturnsProfile(t *testing.T) {
	id := uuid.New()
	svc := &stubUsersService{profile: &users.Profile{ID: id, Name: "Alex Rivera"}}
	resp := httptest.NewRecorder()
	Me(svc, logger.Nop()).ServeHTTP(resp, withUser(newRequest(http.MethodGet, "/api/v1/me", ""), id))

	require.Equal(t, http.StatusOK, resp.Code)
	var p users.Profile
	decodeData(t, resp, &p)
	assert.Equal(t, "Alex Rivera", p.Name)
}

func TestMeUpdateAddressReportsFirstMissingField(t *testing.T) {
	id := uuid.New()
	svc := &stubUsersService{profile: &users.Profile{ID: id}}
	body := `{"full_name":"Alex Rivera","phone":"  ","street":"1 Main St","city":"Austin","state":"TX","zip":"","country":"US"}`

	resp := httptest.NewRecorder()
	MeUpdateAddress(svc, logger.Nop()).ServeHTTP(resp, withUser(newRequest(http.MethodPut, "/api/v1/me/address", body), id))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Phone number is required", env.Error.Message)
	assert.Equal(t, "ZIP code is required", env.Error.Details["zip"])
}

func TestMeUpdateAddressSaves(t *testing.T) {
	id := uuid.New()
	svc := &stubUsersService{profile: &users.Profile{ID: id}}
	body := `{"full_name":" Alex Rivera ","phone":"555-0100","street":"1 Main St","apartment":"","city":"Austin","state":"TX","zip":"78701","country":"US"}`

	resp := httptest.NewRecorder()
	MeUpdateAddress(svc, logger.Nop()).ServeHTTP(resp, withUser(newRequest(http.MethodPut, "/api/v1/me/address", body), id))

	require.Equal(t, http.StatusOK, resp.Code)
	var p users.Profile
	decodeData(t, resp, &p)
	require.NotNil(t, p.Address)
	assert.Equal(t, "Alex Rivera", p.Address.FullName)
}
