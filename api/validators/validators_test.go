package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

type signupBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alex","email":"nope"}`))
	var body signupBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alex","email":"a@b.co","admin":true}`))
	var body signupBody
	err := DecodeJSONBody(req, &body)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyEmptyAndTrailing(t *testing.T) {
	var body signupBody
	err := DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &body)
	require.Error(t, err)
	assert.Equal(t, "request body is required", pkgerrors.As(err).Message())

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","email":"a@b.co"} {"name":"B"}`)), &body)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	payload := `{"name":"` + strings.Repeat("x", int(MaxBodyBytes)) + `","email":"a@b.co"}`
	var body signupBody
	err := DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload)), &body)
	require.Error(t, err)
	assert.Equal(t, "request body too large", pkgerrors.As(err).Message())
}

func TestParseQueryListAcceptsRepeatedAndCommaSeparated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?color=Black,red&color=red&color=+gray+&color=", nil)
	assert.Equal(t, []string{"black", "red", "gray"}, ParseQueryList(req, "color"))
	assert.Nil(t, ParseQueryList(req, "size"))
}

func TestParseQueryIntBounds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?price_max=900&price_min=abc", nil)

	v, err := ParseQueryInt(req, "missing", 7, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ParseQueryInt(req, "price_max", 500, 0, 500)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = ParseQueryInt(req, "price_min", 0, 0, 500)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestParsePathInt(t *testing.T) {
	for raw, ok := range map[string]bool{"12": true, "0": false, "-3": false, "x": false} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("productId", raw)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		_, err := ParsePathInt(req, "productId")
		assert.Equal(t, ok, err == nil, raw)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hood", SanitizeString("  hoodie  ", 4))
	assert.Equal(t, "hoodie", SanitizeString("  hoodie  ", 0))
	assert.Equal(t, "storm \t  jacket", SanitizeString(" storm \t  jacket ", 0))
	assert.Equal(t, "café", SanitizeString("café noir", 4))
	assert.Equal(t, "café ", SanitizeString("café noir", 5))
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []string{"black", "red"}, NormalizeList([]string{" Black", "", "red", "BLACK "}))
	assert.Nil(t, NormalizeList(nil))
}
