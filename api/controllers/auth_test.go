package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanvah/storefront-backend/internal/auth"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/logger"
)

type stubAuthService struct {
	resp       *auth.TokenResponse
	err        error
	gotSignup  auth.SignupRequest
	gotLogin   auth.LoginRequest
	gotToken   string
	gotRefresh string
}

func (s *stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.TokenResponse, error) {
	s.gotSignup = req
	return s.resp, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	s.gotLogin = req
	return s.resp, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, accessToken string) error {
	s.gotToken = accessToken
	return s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*auth.TokenResponse, error) {
	s.gotToken, s.gotRefresh = accessToken, refreshToken
	return s.resp, s.err
}

func TestAuthSignupCreated(t *testing.T) {
	svc := &stubAuthService{resp: &auth.TokenResponse{AccessToken: "access", RefreshToken: "refresh", User: &users.Profile{Name: "Sam"}}}
	resp := httptest.NewRecorder()
	AuthSignup(svc, logger.Nop()).ServeHTTP(resp, newRequest(http.MethodPost, "/api/v1/auth/signup", `{"name":"Sam","email":"sam@example.com","password":"secret1"}`))

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "access", resp.Header().Get(tokenHeader))
	assert.Equal(t, "sam@example.com", svc.gotSignup.Email)

	var body auth.TokenResponse
	decodeData(t, resp, &body)
	assert.Equal(t, "refresh", body.RefreshToken)
}

func TestAuthSignupRejectsMalformedEmail(t *testing.T) {
	svc := &stubAuthService{}
	resp := httptest.NewRecorder()
	AuthSignup(svc, logger.Nop()).ServeHTTP(resp, newRequest(http.MethodPost, "/api/v1/auth/signup", `{"name":"Sam","email":"sam","password":"secret1"}`))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: auth.ErrInvalidCredentials}
	resp := httptest.NewRecorder()
	AuthLogin(svc, logger.Nop()).ServeHTTP(resp, newRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"alex@example.com","password":"nope"}`))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid email or password", env.Error.Message)
}

func TestAuthLogoutRequiresBearer(t *testing.T) {
	svc := &stubAuthService{}
	resp := httptest.NewRecorder()
	AuthLogout(svc, logger.Nop()).ServeHTTP(resp, newRequest(http.MethodPost, "/api/v1/auth/logout", ""))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	req := newRequest(http.MethodPost, "/api/v1/auth/logout", "")
	req.Header.Set("Authorization", "Bearer tok")
	resp = httptest.NewRecorder()
	AuthLogout(svc, logger.Nop()).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "tok", svc.gotToken)
}

func TestAuthRefreshPassesBothTokens(t *testing.T) {
	svc := &stubAuthService{resp: &auth.TokenResponse{AccessToken: "next", RefreshToken: "r2"}}
	req := newRequest(http.MethodPost, "/api/v1/auth/refresh", `{"refresh_token":"r1"}`)
	req.Header.Set("Authorization", "Bearer old")
	resp := httptest.NewRecorder()
	AuthRefresh(svc, logger.Nop()).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "old", svc.gotToken)
	assert.Equal(t, "r1", svc.gotRefresh)
	assert.Equal(t, "next", resp.Header().Get(tokenHeader))
}
