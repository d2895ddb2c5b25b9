package enums

import "fmt"

// SortKey orders catalog query results.
type SortKey string

const (
	SortKeyFeatured  SortKey = "featured"
	SortKeyNewest    SortKey = "newest"
	SortKeyPriceLow  SortKey = "price-low"
	SortKeyPriceHigh SortKey = "price-high"
	SortKeyNameAZ    SortKey = "name-az"
)

var validSortKeys = []SortKey{
	SortKeyFeatured,
	SortKeyNewest,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyNameAZ,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
