package cart

import (
	"context"
	"math"
	"testing"

	"github.com/kanvah/storefront-backend/internal/catalog"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	ops []string
}

func (r *countingRecorder) CartMutation(op string) {
	r.ops = append(r.ops, op)
}

func newTestService(t *testing.T) (Service, *countingRecorder) {
	t.Helper()
	store, _ := newTestStore(t)
	rec := &countingRecorder{}
	svc, err := NewService(store, catalog.Default(), rec)
	require.NoError(t, err)
	return svc, rec
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := NewService(nil, catalog.Default(), nil)
	assert.Error(t, err)
	_, err = NewService(store, nil, nil)
	assert.Error(t, err)
}

func TestServiceAddItemValidatesVariant(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "xxl", Color: "black"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "m", Color: "red"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, "s", AddItemInput{ProductID: 404, Size: "m", Color: "black"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	assert.Empty(t, rec.ops)
}

func TestServiceAddItemPersists(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: " M ", Color: "Black"})
	require.NoError(t, err)
	sess, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "m", Color: "black", Quantity: 2})
	require.NoError(t, err)

	lines := sess.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	reloaded, err := svc.Get(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Cart.TotalItems())
	assert.Equal(t, []string{"add", "add"}, rec.ops)
}

func TestServiceUpdateAndRemoveAddressing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "m", Color: "black"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "l", Color: "gray"})
	require.NoError(t, err)

	sess, err := svc.UpdateQuantity(ctx, "s", UpdateQuantityInput{ProductID: 1, Size: "l", Color: "gray", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 6, sess.Cart.TotalItems())

	_, err = svc.UpdateQuantity(ctx, "s", UpdateQuantityInput{ProductID: 1, Size: "l", Quantity: 5})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	sess, err = svc.RemoveItem(ctx, "s", RemoveItemInput{ProductID: 1, Size: "m", Color: "black"})
	require.NoError(t, err)
	assert.Equal(t, 5, sess.Cart.TotalItems())

	sess, err = svc.UpdateQuantity(ctx, "s", UpdateQuantityInput{ProductID: 1, Quantity: 0})
	require.NoError(t, err)
	assert.True(t, sess.Cart.IsEmpty())
}

func TestServiceClearAndMissingSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 8, Size: "xs", Color: "red"})
	require.NoError(t, err)
	sess, err := svc.Clear(ctx, "s")
	require.NoError(t, err)
	assert.True(t, sess.Cart.IsEmpty())

	reloaded, err := svc.Get(ctx, "s")
	require.NoError(t, err)
	assert.True(t, reloaded.Cart.IsEmpty())
	assert.True(t, reloaded.UpdatedAt.IsZero())

	_, err = svc.Get(ctx, " ")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestServiceRejectsQuantityOverflow(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "m", Color: "black", Quantity: math.MaxInt})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "m", Color: "black"})
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, "s", AddItemInput{ProductID: 1, Size: "l", Color: "gray"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	sess, err := svc.Get(ctx, "s")
	require.NoError(t, err)
	lines := sess.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, math.MaxInt, lines[0].Quantity)
	assert.Equal(t, []string{"add"}, rec.ops)
}
