package enums

import "fmt"

// FilterDimension names one removable criterion of a catalog query.
type FilterDimension string

const (
	FilterDimensionGender   FilterDimension = "gender"
	FilterDimensionCategory FilterDimension = "category"
	FilterDimensionColor    FilterDimension = "color"
	FilterDimensionSize     FilterDimension = "size"
	FilterDimensionMaterial FilterDimension = "material"
	FilterDimensionSearch   FilterDimension = "search"
	FilterDimensionPrice    FilterDimension = "price"
)

var validFilterDimensions = []FilterDimension{
	FilterDimensionGender,
	FilterDimensionCategory,
	FilterDimensionColor,
	FilterDimensionSize,
	FilterDimensionMaterial,
	FilterDimensionSearch,
	FilterDimensionPrice,
}

// String implements fmt.Stringer.
func (f FilterDimension) String() string {
	return string(f)
}

// IsValid reports whether the value is a known FilterDimension.
func (f FilterDimension) IsValid() bool {
	for _, candidate := range validFilterDimensions {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFilterDimension converts raw input into a FilterDimension.
func ParseFilterDimension(value string) (FilterDimension, error) {
	for _, candidate := range validFilterDimensions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid filter dimension %q", value)
}

// IsSet reports whether the dimension holds a set of selected values rather than
// a single scalar criterion such as search text or the price range.
func (f FilterDimension) IsSet() bool {
	switch f {
	case FilterDimensionGender, FilterDimensionCategory, FilterDimensionColor, FilterDimensionSize, FilterDimensionMaterial:
		return true
	default:
		return false
	}
}
