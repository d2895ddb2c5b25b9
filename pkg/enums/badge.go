package enums

import "fmt"

// Badge is an optional merchandising tag shown on product cards.
type Badge string

const (
	BadgeNew     Badge = "new"
	BadgeSale    Badge = "sale"
	BadgeLimited Badge = "limited"
)

var validBadges = []Badge{
	BadgeNew,
	BadgeSale,
	BadgeLimited,
}

// String implements fmt.Stringer.
func (b Badge) String() string {
	return string(b)
}

// IsValid reports whether the value is a known Badge.
func (b Badge) IsValid() bool {
	for _, candidate := range validBadges {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBadge converts raw input into a Badge.
func ParseBadge(value string) (Badge, error) {
	for _, candidate := range validBadges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid badge %q", value)
}
