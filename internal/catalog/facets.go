package catalog

import (
	"slices"

	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// FacetOption is one selectable sidebar entry with the number of matching products.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Hex   string `json:"hex,omitempty"`
}

// Facets describes the filter sidebar for a product set.
type Facets struct {
	Genders    []FacetOption   `json:"genders"`
	Categories []FacetOption   `json:"categories"`
	Colors     []FacetOption   `json:"colors"`
	Sizes      []FacetOption   `json:"sizes"`
	Materials  []FacetOption   `json:"materials"`
	PriceMin   decimal.Decimal `json:"price_min"`
	PriceMax   decimal.Decimal `json:"price_max"`
	Defaults   FilterState     `json:"defaults"`
}

// BuildFacets counts products per option. Every fixed option is listed even when
// its count is zero; tags not in the fixed lists are appended in first-seen order.
func BuildFacets(products []Product) Facets {
	genders := make([]string, 0, len(enums.Genders()))
	for _, g := range enums.Genders() {
		genders = append(genders, string(g))
	}
	categories := make([]string, 0, len(enums.Categories()))
	for _, c := range enums.Categories() {
		categories = append(categories, string(c))
	}

	f := Facets{
		Genders:    countOptions(products, genders, func(p Product) []string { return []string{string(p.Gender)} }),
		Categories: countOptions(products, categories, func(p Product) []string { return []string{string(p.Category)} }),
		Colors:     countOptions(products, colorOrder, func(p Product) []string { return p.Colors }),
		Sizes:      countOptions(products, sizeOrder, func(p Product) []string { return p.Sizes }),
		Materials:  countOptions(products, materialOrder, func(p Product) []string { return []string{p.Material} }),
		Defaults:   DefaultFilterState(),
	}
	for i := range f.Categories {
		f.Categories[i].Label = enums.Category(f.Categories[i].Value).Label()
	}
	for i := range f.Colors {
		f.Colors[i].Hex = ColorHex[f.Colors[i].Value]
	}

	for i, p := range products {
		if i == 0 || p.Price.LessThan(f.PriceMin) {
			f.PriceMin = p.Price
		}
		if i == 0 || p.Price.GreaterThan(f.PriceMax) {
			f.PriceMax = p.Price
		}
	}
	return f
}

func countOptions(products []Product, order []string, attr func(Product) []string) []FacetOption {
	values := slices.Clone(order)
	counts := make(map[string]int, len(order))
	for _, p := range products {
		for _, v := range attr(p) {
			if !slices.Contains(values, v) {
				values = append(values, v)
			}
			counts[v]++
		}
	}
	out := make([]FacetOption, 0, len(values))
	for _, v := range values {
		out = append(out, FacetOption{Value: v, Label: v, Count: counts[v]})
	}
	return out
}
