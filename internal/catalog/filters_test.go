package catalog

import (
	"testing"

	"github.com/kanvah/storefront-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func TestToggleIsSelfInverse(t *testing.T) {
	base := DefaultFilterState()
	base.Color = []string{"black"}

	for _, dim := range []enums.FilterDimension{
		enums.FilterDimensionGender,
		enums.FilterDimensionCategory,
		enums.FilterDimensionColor,
		enums.FilterDimensionSize,
		enums.FilterDimensionMaterial,
	} {
		on := base.Toggle(dim, "x")
		assert.Contains(t, on.Values(dim), "x", dim)
		off := on.Toggle(dim, "x")
		assert.ElementsMatch(t, base.Values(dim), off.Values(dim), dim)
	}
}

func TestToggleRemovesAlreadyAppliedValue(t *testing.T) {
	f := DefaultFilterState()
	f.Size = []string{"s", "m", "l"}

	got := f.Toggle(enums.FilterDimensionSize, "m")
	assert.Equal(t, []string{"s", "l"}, got.Size)
	assert.Equal(t, []string{"s", "m", "l"}, f.Size, "toggle must not alias the receiver")
}

func TestToggleIgnoresScalarDimensions(t *testing.T) {
	f := DefaultFilterState()
	assert.Equal(t, f, f.Toggle(enums.FilterDimensionPrice, "range"))
}

func TestClearAll(t *testing.T) {
	f := FilterState{Gender: []string{"men"}, PriceMin: 10, PriceMax: 20}
	assert.Equal(t, DefaultFilterState(), f.ClearAll())
}
