package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressScanFromBytes(t *testing.T) {
	var a Address
	require.NoError(t, a.Scan([]byte(`{"full_name":"Alex Rivera","city":"Los Angeles","zip":"90001"}`)))
	assert.Equal(t, "Alex Rivera", a.FullName)
	assert.Equal(t, "90001", a.Zip)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, Address{}, a)

	assert.Error(t, a.Scan(42))
}

func TestAddressTrimmed(t *testing.T) {
	a := Address{FullName: "  Alex ", Apartment: " 3B ", Country: "US\n"}.Trimmed()
	assert.Equal(t, "Alex", a.FullName)
	assert.Equal(t, "3B", a.Apartment)
	assert.Equal(t, "US", a.Country)
}

func TestIDListValueAndMerge(t *testing.T) {
	var empty IDList
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	merged := IDList{1, 2}.Merge(2, 5, 1, 8)
	assert.Equal(t, IDList{1, 2, 5, 8}, merged)
	assert.True(t, merged.Contains(5))
	assert.False(t, merged.Contains(3))

	var scanned IDList
	require.NoError(t, scanned.Scan("[3,4]"))
	assert.Equal(t, IDList{3, 4}, scanned)
	assert.Error(t, scanned.Scan("{"))
}
