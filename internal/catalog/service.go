package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanvah/storefront-backend/pkg/enums"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
)

// DefaultRelatedLimit caps the "you may also like" row on a product page.
const DefaultRelatedLimit = 4

// Service exposes read-only shop queries to the HTTP layer.
type Service interface {
	List(ctx context.Context, q Query) (*ListResult, error)
	Refine(ctx context.Context, in RefineInput) (*ListResult, error)
	Get(ctx context.Context, id int) (*Product, error)
	Related(ctx context.Context, id, limit int) ([]Product, error)
	Facets(ctx context.Context, onlyNew bool) (*Facets, error)
}

type RefineAction string

const (
	RefineToggle    RefineAction = "toggle"
	RefineRemoveTag RefineAction = "remove_tag"
	RefineClearAll  RefineAction = "clear_all"
)

// RefineInput is the current shop query plus one sidebar or chip action.
// Dimension and Value are ignored by RefineClearAll.
type RefineInput struct {
	Query     Query
	Action    RefineAction
	Dimension enums.FilterDimension
	Value     string
}

// ListResult is one page of shop results with the chips describing the query.
type ListResult struct {
	Products []Product   `json:"products"`
	Count    int         `json:"count"`
	Tags     []Tag       `json:"active_filters"`
	Filters  FilterState `json:"filters"`
	Search   string      `json:"search"`
	Sort     string      `json:"sort"`
	OnlyNew  bool        `json:"only_new"`
}

type service struct {
	catalog *Catalog
}

func NewService(c *Catalog) (Service, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{catalog: c}, nil
}

func (s *service) List(ctx context.Context, q Query) (*ListResult, error) {
	if q.Sort == "" {
		q.Sort = NewQuery().Sort
	}
	products := s.catalog.Search(q)
	return &ListResult{
		Products: products,
		Count:    len(products),
		Tags:     ActiveTags(q.Filters, q.Search),
		Filters:  q.Filters,
		Search:   q.Search,
		Sort:     q.Sort.String(),
		OnlyNew:  q.OnlyNew,
	}, nil
}

// Refine applies the action to the query and runs the result. Clearing all
// filters keeps the search text.
func (s *service) Refine(ctx context.Context, in RefineInput) (*ListResult, error) {
	q := in.Query
	value := strings.ToLower(strings.TrimSpace(in.Value))
	switch in.Action {
	case RefineToggle:
		if !in.Dimension.IsSet() {
			return nil, pkgerrors.Validation(fmt.Sprintf("cannot toggle %q", in.Dimension)).WithDetails(map[string]any{"field": "dimension"})
		}
		if value == "" {
			return nil, pkgerrors.Validation("value is required").WithDetails(map[string]any{"field": "value"})
		}
		q.Filters = q.Filters.Toggle(in.Dimension, value)
	case RefineRemoveTag:
		if !in.Dimension.IsValid() {
			return nil, pkgerrors.Validation(fmt.Sprintf("unknown filter %q", in.Dimension)).WithDetails(map[string]any{"field": "dimension"})
		}
		q.Filters, q.Search = RemoveTag(q.Filters, q.Search, Tag{Type: in.Dimension, Value: value})
	case RefineClearAll:
		q.Filters = q.Filters.ClearAll()
	default:
		return nil, pkgerrors.Validation(fmt.Sprintf("unknown action %q", in.Action)).WithDetails(map[string]any{"field": "action"})
	}
	return s.List(ctx, q)
}

func (s *service) Get(ctx context.Context, id int) (*Product, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) Related(ctx context.Context, id, limit int) ([]Product, error) {
	return s.catalog.Related(id, limit)
}

func (s *service) Facets(ctx context.Context, onlyNew bool) (*Facets, error) {
	products := s.catalog.All()
	if onlyNew {
		products = Run(products, Query{Filters: DefaultFilterState(), OnlyNew: true})
	}
	f := BuildFacets(products)
	return &f, nil
}
