package catalog

import (
	"fmt"
	"slices"

	"github.com/kanvah/storefront-backend/pkg/enums"
)

// Tag is one removable chip shown above the results.
type Tag struct {
	Type  enums.FilterDimension `json:"type"`
	Value string                `json:"value"`
	Label string                `json:"label"`
}

var tagDimensions = []enums.FilterDimension{
	enums.FilterDimensionGender,
	enums.FilterDimensionCategory,
	enums.FilterDimensionColor,
	enums.FilterDimensionSize,
	enums.FilterDimensionMaterial,
}

const priceTagValue = "range"

// ActiveTags lists one tag per selected value, then search, then a custom price range.
func ActiveTags(f FilterState, search string) []Tag {
	tags := []Tag{}
	for _, dim := range tagDimensions {
		for _, v := range f.Values(dim) {
			tags = append(tags, Tag{Type: dim, Value: v, Label: v})
		}
	}
	if search != "" {
		tags = append(tags, Tag{Type: enums.FilterDimensionSearch, Value: search, Label: `"` + search + `"`})
	}
	if f.HasCustomPrice() {
		tags = append(tags, Tag{
			Type:  enums.FilterDimensionPrice,
			Value: priceTagValue,
			Label: fmt.Sprintf("$%d — $%d", f.PriceMin, f.PriceMax),
		})
	}
	return tags
}

// RemoveTag clears exactly the criterion tag represents. Removing the price tag
// restores the full default range.
func RemoveTag(f FilterState, search string, tag Tag) (FilterState, string) {
	out := f.clone()
	switch {
	case tag.Type == enums.FilterDimensionSearch:
		return out, ""
	case tag.Type == enums.FilterDimensionPrice:
		out.PriceMin, out.PriceMax = DefaultPriceMin, DefaultPriceMax
		return out, search
	case tag.Type.IsSet():
		values := slices.DeleteFunc(out.Values(tag.Type), func(v string) bool { return v == tag.Value })
		out.set(tag.Type, values)
		return out, search
	default:
		return out, search
	}
}
