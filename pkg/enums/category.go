package enums

import "fmt"

// Category is the merchandising department a product is listed under.
type Category string

const (
	CategoryHoodies     Category = "hoodies"
	CategoryOuterwear   Category = "outerwear"
	CategoryTechwear    Category = "techwear"
	CategoryEssentials  Category = "essentials"
	CategoryAccessories Category = "accessories"
)

var validCategories = []Category{
	CategoryHoodies,
	CategoryOuterwear,
	CategoryTechwear,
	CategoryEssentials,
	CategoryAccessories,
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}

var categoryLabels = map[Category]string{
	CategoryHoodies:     "Hoodies",
	CategoryOuterwear:   "Jackets & Outerwear",
	CategoryTechwear:    "Tech-Wear",
	CategoryEssentials:  "Essentials",
	CategoryAccessories: "Accessories",
}

// Label returns the storefront display name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Categories lists every category in sidebar order.
func Categories() []Category {
	return append([]Category(nil), validCategories...)
}
