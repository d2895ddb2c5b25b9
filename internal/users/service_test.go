package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) (Service, *Repository) {
	t.Helper()
	r := NewRepository(setupUsersTestDB(t))
	_, err := SeedDemo(context.Background(), r, fastPassword)
	require.NoError(t, err)
	svc, err := NewService(r)
	require.NoError(t, err)
	return svc, r
}

func TestServiceMeOmitsPassword(t *testing.T) {
	svc, r := newSeededService(t)
	ctx := context.Background()
	jordan, err := r.FindByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)

	profile, err := svc.Me(ctx, jordan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Taylor", profile.Name)
	assert.Equal(t, "#1a8a3e", profile.Avatar)
	assert.Equal(t, []int{2, 6, 9, 10, 16}, profile.PurchasedProductIDs)
	assert.Nil(t, profile.Address)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestServiceUpdateAddressValidates(t *testing.T) {
	svc, r := newSeededService(t)
	ctx := context.Background()
	morgan, err := r.FindByEmail(ctx, "morgan@example.com")
	require.NoError(t, err)

	_, err = svc.UpdateAddress(ctx, morgan.ID, types.Address{FullName: "Morgan"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	profile, err := svc.UpdateAddress(ctx, morgan.ID, types.Address{
		FullName: " Morgan Chen ", Phone: "555", Street: "1 Market St", City: "San Francisco",
		State: "CA", Zip: "94105", Country: "United States",
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Address)
	assert.Equal(t, "Morgan Chen", profile.Address.FullName)
}

func TestServiceRecordPurchase(t *testing.T) {
	svc, r := newSeededService(t)
	ctx := context.Background()
	jordan, err := r.FindByEmail(ctx, "jordan@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.RecordPurchase(ctx, jordan.ID, []int{1, 2}))
	require.NoError(t, svc.RecordPurchase(ctx, jordan.ID, nil))

	user, err := svc.Get(ctx, jordan.ID)
	require.NoError(t, err)
	assert.True(t, user.HasPurchased(1))
	assert.Equal(t, types.IDList{2, 6, 9, 10, 16, 1}, user.PurchasedProductIDs)

	assert.ErrorIs(t, svc.RecordPurchase(ctx, uuid.New(), []int{1}), ErrUserNotFound)
}

func TestAvatarColorIsStable(t *testing.T) {
	cases := map[string]string{
		"Alex Rivera":   "#0891b2",
		"Morgan Chen":   "#ea580c",
		"Jordan Taylor": "#1a8a3e",
		"Riley Park":    "#c81020",
		"":              "#c81020",
	}
	for name, want := range cases {
		if got := AvatarColor(name); got != want {
			t.Fatalf("AvatarColor(%q) = %s, want %s", name, got, want)
		}
	}
}
