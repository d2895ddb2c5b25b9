package catalog

import (
	"slices"

	"github.com/kanvah/storefront-backend/pkg/enums"
)

const (
	DefaultPriceMin = 0
	DefaultPriceMax = 500
)

// FilterState holds the sidebar criteria. An empty set means no restriction.
// PriceMin <= PriceMax is expected but not enforced; callers clamp.
type FilterState struct {
	Gender   []string `json:"gender"`
	Category []string `json:"category"`
	Color    []string `json:"color"`
	Size     []string `json:"size"`
	Material []string `json:"material"`
	PriceMin int      `json:"price_min"`
	PriceMax int      `json:"price_max"`
}

func DefaultFilterState() FilterState {
	return FilterState{PriceMin: DefaultPriceMin, PriceMax: DefaultPriceMax}
}

// HasCustomPrice reports whether the price range differs from the full default range.
func (f FilterState) HasCustomPrice() bool {
	return f.PriceMin > DefaultPriceMin || f.PriceMax < DefaultPriceMax
}

// Values returns the selected values of a set dimension, or nil for scalar ones.
func (f FilterState) Values(dim enums.FilterDimension) []string {
	switch dim {
	case enums.FilterDimensionGender:
		return f.Gender
	case enums.FilterDimensionCategory:
		return f.Category
	case enums.FilterDimensionColor:
		return f.Color
	case enums.FilterDimensionSize:
		return f.Size
	case enums.FilterDimensionMaterial:
		return f.Material
	default:
		return nil
	}
}

func (f *FilterState) set(dim enums.FilterDimension, values []string) {
	switch dim {
	case enums.FilterDimensionGender:
		f.Gender = values
	case enums.FilterDimensionCategory:
		f.Category = values
	case enums.FilterDimensionColor:
		f.Color = values
	case enums.FilterDimensionSize:
		f.Size = values
	case enums.FilterDimensionMaterial:
		f.Material = values
	}
}

// Toggle adds value to the dimension when absent and removes it when present, so
// applying the same toggle twice restores the original state. Scalar dimensions
// are left untouched.
func (f FilterState) Toggle(dim enums.FilterDimension, value string) FilterState {
	if !dim.IsSet() {
		return f
	}
	current := f.Values(dim)
	var next []string
	if slices.Contains(current, value) {
		next = slices.DeleteFunc(slices.Clone(current), func(v string) bool { return v == value })
	} else {
		next = append(slices.Clone(current), value)
	}
	out := f.clone()
	out.set(dim, next)
	return out
}

// ClearAll resets every criterion to its default.
func (f FilterState) ClearAll() FilterState {
	return DefaultFilterState()
}

func (f FilterState) clone() FilterState {
	return FilterState{
		Gender:   slices.Clone(f.Gender),
		Category: slices.Clone(f.Category),
		Color:    slices.Clone(f.Color),
		Size:     slices.Clone(f.Size),
		Material: slices.Clone(f.Material),
		PriceMin: f.PriceMin,
		PriceMax: f.PriceMax,
	}
}
