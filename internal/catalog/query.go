package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query is the full set of shop criteria applied to the catalog.
type Query struct {
	Filters FilterState
	Search  string
	Sort    enums.SortKey
	OnlyNew bool
}

// NewQuery returns a query with default filters and the featured sort.
func NewQuery() Query {
	return Query{Filters: DefaultFilterState(), Sort: enums.SortKeyFeatured}
}

// Run filters and sorts products without modifying the input slice.
// Ties under every sort key keep catalog order.
func Run(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	sortProducts(out, q.Sort)
	return out
}

func matches(p Product, q Query) bool {
	if q.OnlyNew && !p.IsFresh() {
		return false
	}
	if q.Search != "" && !matchesSearch(p, q.Search) {
		return false
	}

	f := q.Filters
	if len(f.Gender) > 0 && !slices.Contains(f.Gender, string(p.Gender)) {
		return false
	}
	if len(f.Category) > 0 && !slices.Contains(f.Category, string(p.Category)) {
		return false
	}
	if len(f.Color) > 0 && !intersects(p.Colors, f.Color) {
		return false
	}
	if len(f.Size) > 0 && !intersects(p.Sizes, f.Size) {
		return false
	}
	if len(f.Material) > 0 && !slices.Contains(f.Material, p.Material) {
		return false
	}

	min := decimal.NewFromInt(int64(f.PriceMin))
	max := decimal.NewFromInt(int64(f.PriceMax))
	return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
}

func matchesSearch(p Product, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(string(p.Category)), needle)
}

func intersects(have, want []string) bool {
	for _, v := range have {
		if slices.Contains(want, v) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, key enums.SortKey) {
	switch key {
	case enums.SortKeyNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case enums.SortKeyPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortKeyPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case enums.SortKeyNameAZ:
		col := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].HasBadge() && !products[j].HasBadge()
		})
	}
}
