package controllers

import (
	"net/http"
	"strings"

	"github.com/kanvah/storefront-backend/api/responses"
	"github.com/kanvah/storefront-backend/api/validators"
	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/pkg/enums"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/logger"
)

const (
	maxSearchLen  = 100
	maxRelatedLen = 12
)

type refineCatalogRequest struct {
	Gender    []string `json:"gender"`
	Category  []string `json:"category"`
	Color     []string `json:"color"`
	Size      []string `json:"size"`
	Material  []string `json:"material"`
	PriceMin  *int     `json:"price_min" validate:"omitempty,gte=0,lte=500"`
	PriceMax  *int     `json:"price_max" validate:"omitempty,gte=0,lte=500"`
	Search    string   `json:"search"`
	Sort      string   `json:"sort"`
	OnlyNew   bool     `json:"only_new"`
	Action    string   `json:"action" validate:"required,oneof=toggle remove_tag clear_all"`
	Dimension string   `json:"dimension"`
	Value     string   `json:"value"`
}

// CatalogList runs the shop query described by the URL parameters.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		q, err := parseCatalogQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), q)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CatalogRefine applies one sidebar or chip action (toggle a value, remove a
// tag, clear all filters) to the posted query and returns the new results.
func CatalogRefine(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body refineCatalogRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		q := catalog.NewQuery()
		q.Search = validators.SanitizeString(body.Search, maxSearchLen)
		q.OnlyNew = body.OnlyNew
		q.Filters.Gender = validators.NormalizeList(body.Gender)
		q.Filters.Category = validators.NormalizeList(body.Category)
		q.Filters.Color = validators.NormalizeList(body.Color)
		q.Filters.Size = validators.NormalizeList(body.Size)
		q.Filters.Material = validators.NormalizeList(body.Material)
		if body.PriceMin != nil {
			q.Filters.PriceMin = *body.PriceMin
		}
		if body.PriceMax != nil {
			q.Filters.PriceMax = *body.PriceMax
		}
		if q.Filters.PriceMin > q.Filters.PriceMax {
			q.Filters.PriceMin = q.Filters.PriceMax
		}
		if body.Sort != "" {
			key, err := parseSortKey(body.Sort)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			q.Sort = key
		}

		in := catalog.RefineInput{Query: q, Action: catalog.RefineAction(body.Action), Value: body.Value}
		if raw := strings.ToLower(strings.TrimSpace(body.Dimension)); raw != "" {
			dim, err := enums.ParseFilterDimension(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid filter dimension").WithDetails(map[string]any{"field": "dimension"}))
				return
			}
			in.Dimension = dim
		}

		result, err := svc.Refine(r.Context(), in)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

func CatalogProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParsePathInt(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogRelated lists other products from the same category, four by default.
func CatalogRelated(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParsePathInt(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", catalog.DefaultRelatedLimit, 1, maxRelatedLen)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.Related(r.Context(), id, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

func CatalogFacets(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		onlyNew, err := validators.ParseQueryBool(r, "only_new")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		facets, err := svc.Facets(r.Context(), onlyNew)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, facets)
	}
}

// parseCatalogQuery maps URL parameters onto a catalog query. Unknown filter
// values are kept; they simply match nothing.
func parseCatalogQuery(r *http.Request) (catalog.Query, error) {
	q := catalog.NewQuery()

	q.Search = validators.SanitizeString(r.URL.Query().Get("q"), maxSearchLen)
	q.Filters.Gender = validators.ParseQueryList(r, "gender")
	q.Filters.Category = validators.ParseQueryList(r, "category")
	q.Filters.Color = validators.ParseQueryList(r, "color")
	q.Filters.Size = validators.ParseQueryList(r, "size")
	q.Filters.Material = validators.ParseQueryList(r, "material")

	var err error
	if q.Filters.PriceMin, err = validators.ParseQueryInt(r, "price_min", catalog.DefaultPriceMin, catalog.DefaultPriceMin, catalog.DefaultPriceMax); err != nil {
		return catalog.Query{}, err
	}
	if q.Filters.PriceMax, err = validators.ParseQueryInt(r, "price_max", catalog.DefaultPriceMax, catalog.DefaultPriceMin, catalog.DefaultPriceMax); err != nil {
		return catalog.Query{}, err
	}
	if q.Filters.PriceMin > q.Filters.PriceMax {
		q.Filters.PriceMin = q.Filters.PriceMax
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("sort")); raw != "" {
		if q.Sort, err = parseSortKey(raw); err != nil {
			return catalog.Query{}, err
		}
	}

	if q.OnlyNew, err = validators.ParseQueryBool(r, "only_new"); err != nil {
		return catalog.Query{}, err
	}
	return q, nil
}

func parseSortKey(raw string) (enums.SortKey, error) {
	key, err := enums.ParseSortKey(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort").WithDetails(map[string]any{"field": "sort"})
	}
	return key, nil
}
