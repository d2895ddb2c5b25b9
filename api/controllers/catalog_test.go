package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/kanvah/storefront-backend/pkg/logger"
)

func newCatalogService(t *testing.T) catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.Default())
	require.NoError(t, err)
	return svc
}

func TestParseCatalogQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?q=+Hoodie+&color=black,gray&size=m&size=l&price_min=300&price_max=200&sort=price-low&only_new=true", nil)

	q, err := parseCatalogQuery(req)
	require.NoError(t, err)
	assert.Equal(t, "Hoodie", q.Search)
	assert.Equal(t, []string{"black", "gray"}, q.Filters.Color)
	assert.Equal(t, []string{"m", "l"}, q.Filters.Size)
	assert.Equal(t, 200, q.Filters.PriceMin)
	assert.Equal(t, 200, q.Filters.PriceMax)
	assert.Equal(t, enums.SortKeyPriceLow, q.Sort)
	assert.True(t, q.OnlyNew)
}

func TestParseCatalogQueryDefaults(t *testing.T) {
	q, err := parseCatalogQuery(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, catalog.NewQuery(), q)
}

func TestCatalogListRejectsUnknownSort(t *testing.T) {
	handler := CatalogList(newCatalogService(t), logger.Nop())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodGet, "/api/v1/catalog/products?sort=cheapest", ""))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env := decodeEnvelope(t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestCatalogListFiltersAndTags(t *testing.T) {
	handler := CatalogList(newCatalogService(t), logger.Nop())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodGet, "/api/v1/catalog/products?category=hoodies&category=unknown&q=shadow", ""))
	require.Equal(t, http.StatusOK, resp.Code)

	var result catalog.ListResult
	decodeData(t, resp, &result)
	require.NotZero(t, result.Count)
	for _, p := range result.Products {
		assert.Equal(t, enums.Category("hoodies"), p.Category)
	}
	assert.Len(t, result.Tags, 3)
	assert.Equal(t, `"shadow"`, result.Tags[2].Label)
}

func TestCatalogProductNotFound(t *testing.T) {
	handler := CatalogProduct(newCatalogService(t), logger.Nop())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/", ""), "productId", "9999"))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/", ""), "productId", "1"))
	require.Equal(t, http.StatusOK, resp.Code)
	var p catalog.Product
	decodeData(t, resp, &p)
	assert.Equal(t, "Shadow Hoodie", p.Name)
}

func TestCatalogFacets(t *testing.T) {
	handler := CatalogFacets(newCatalogService(t), logger.Nop())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodGet, "/api/v1/catalog/facets", ""))
	require.Equal(t, http.StatusOK, resp.Code)

	var facets catalog.Facets
	decodeData(t, resp, &facets)
	assert.NotEmpty(t, facets.Colors)
	assert.Equal(t, catalog.DefaultPriceMax, facets.Defaults.PriceMax)
}

func TestParseCatalogQueryKeepsSearchVerbatim(t *testing.T) {
	q, err := parseCatalogQuery(httptest.NewRequest(http.MethodGet, "/?q=%20storm%20%20jacket%20", nil))
	require.NoError(t, err)
	assert.Equal(t, "storm  jacket", q.Search)
}

func TestCatalogRelated(t *testing.T) {
	handler := CatalogRelated(newCatalogService(t), logger.Nop())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/", ""), "productId", "4"))
	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Products []catalog.Product `json:"products"`
	}
	decodeData(t, resp, &body)
	require.Len(t, body.Products, catalog.DefaultRelatedLimit)
	assert.Equal(t, 2, body.Products[0].ID)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/?limit=2", ""), "productId", "4"))
	decodeData(t, resp, &body)
	assert.Len(t, body.Products, 2)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/?limit=0", ""), "productId", "4"))
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, withURLParam(newRequest(http.MethodGet, "/", ""), "productId", "404"))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCatalogRefine(t *testing.T) {
	handler := CatalogRefine(newCatalogService(t), logger.Nop())

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", `{"color":["Black"],"price_max":300,"search":"hoodie","action":"toggle","dimension":"Color","value":"gray"}`))
	require.Equal(t, http.StatusOK, resp.Code)
	var result catalog.ListResult
	decodeData(t, resp, &result)
	assert.Equal(t, []string{"black", "gray"}, result.Filters.Color)
	assert.Equal(t, 300, result.Filters.PriceMax)
	assert.Equal(t, "hoodie", result.Search)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", `{"color":["black"],"search":"hoodie","action":"clear_all"}`))
	require.Equal(t, http.StatusOK, resp.Code)
	decodeData(t, resp, &result)
	assert.Empty(t, result.Filters.Color)
	assert.Equal(t, "hoodie", result.Search)

	for _, body := range []string{
		`{"action":"explode"}`,
		`{"action":"toggle","dimension":"brand","value":"x"}`,
		`{"price_min":-1,"action":"clear_all"}`,
		`{"sort":"cheapest","action":"clear_all"}`,
	} {
		resp = httptest.NewRecorder()
		handler.ServeHTTP(resp, newRequest(http.MethodPost, "/", body))
		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
	}
}
