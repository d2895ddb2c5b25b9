package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/repo"
	"github.com/kanvah/storefront-backend/pkg/db"
	"github.com/kanvah/storefront-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryCreateAndFind(t *testing.T) {
	r := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	user := &User{Name: "Sam Carter", Email: "sam@example.com", PasswordHash: "x", AvatarColor: AvatarColor("Sam Carter")}
	require.NoError(t, r.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	found, err := r.FindByEmail(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Empty(t, found.PurchasedProductIDs)
	assert.Nil(t, found.Address)

	_, err = r.FindByID(ctx, uuid.New())
	assert.True(t, repo.IsNotFound(err))
}

func TestRepositoryRejectsDuplicateEmail(t *testing.T) {
	r := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &User{Name: "A", Email: "dup@example.com", PasswordHash: "x", AvatarColor: "#c81020"}))
	err := r.Create(ctx, &User{Name: "B", Email: "dup@example.com", PasswordHash: "y", AvatarColor: "#c81020"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestRepositoryAddressAndPurchases(t *testing.T) {
	r := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()
	user := &User{Name: "Riley Park", Email: "riley@example.com", PasswordHash: "x", AvatarColor: "#c81020", PurchasedProductIDs: types.IDList{3}}
	require.NoError(t, r.Create(ctx, user))

	addr := types.Address{FullName: "Riley Park", Phone: "1", Street: "1 Main", City: "Austin", State: "TX", Zip: "73301", Country: "US"}
	require.NoError(t, r.UpdateAddress(ctx, user.ID, addr))

	merged, err := r.AddPurchases(ctx, user.ID, []int{5, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, types.IDList{3, 5, 7}, merged)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, r.UpdateLastLogin(ctx, user.ID, at))

	found, err := r.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Address)
	assert.Equal(t, addr, *found.Address)
	assert.Equal(t, types.IDList{3, 5, 7}, found.PurchasedProductIDs)
	require.NotNil(t, found.LastLoginAt)
	assert.True(t, found.LastLoginAt.Equal(at))

	assert.True(t, repo.IsNotFound(r.UpdateAddress(ctx, uuid.New(), addr)))
}

func TestSeedDemoRunsOnce(t *testing.T) {
	r := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	seeded, err := SeedDemo(ctx, r, fastPassword)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedDemo(ctx, r, fastPassword)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	alex, err := r.FindByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, types.IDList{1, 2, 5, 8, 12}, alex.PurchasedProductIDs)
	assert.True(t, alex.HasAddress())
	assert.Equal(t, "Apt 3B", alex.Address.Apartment)
	assert.Equal(t, "#0891b2", alex.AvatarColor)

	morgan, err := r.FindByEmail(ctx, "morgan@example.com")
	require.NoError(t, err)
	assert.False(t, morgan.HasAddress())
	assert.True(t, morgan.HasPurchased(14))
}
