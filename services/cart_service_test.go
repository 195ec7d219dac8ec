package services

import (
	"context"
	"testing"

	"storefront/entity"
	"storefront/hooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap() map[string]string { return map[string]string{"wrap_as_gift": "1"} }

func TestAddWithGiftWrapAppliesFee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", true, "5.00")

	cart, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1", cart.Items[0].WrapAsGift)
	assert.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2))
	assert.Equal(t, "25.00", cart.Subtotal.StringFixed(2))
}

func TestSelectionSurvivesSessionReload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", true, "5.00")

	_, err := f.carts.Add(ctx, token, p.ID, 2, wrap())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		cart, err := f.carts.Load(ctx, token)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "1", cart.Items[0].WrapAsGift)
		assert.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2), "reload %d", i)
		assert.Equal(t, "50.00", cart.Subtotal.StringFixed(2))
	}
}

func TestSelectionDroppedWhenNotOffered(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Pen", "3.00", false, "")

	cart, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)
	assert.Empty(t, cart.Items[0].WrapAsGift)
	assert.Equal(t, "3.00", cart.Items[0].Price.StringFixed(2))
}

func TestFreeWrapKeepsSelectionAtBasePrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Card", "4.00", true, "0")

	cart, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)
	assert.Equal(t, "1", cart.Items[0].WrapAsGift)
	assert.Equal(t, "4.00", cart.Items[0].Price.StringFixed(2))

	view := f.carts.View(ctx, cart)
	require.Len(t, view.Items[0].Data, 1)
	assert.Equal(t, "Yes (FREE)", view.Items[0].Data[0].Value)
}

func TestLinesMergeOnlyWithSameSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", true, "5.00")

	_, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)
	_, err = f.carts.Add(ctx, token, p.ID, 1, nil)
	require.NoError(t, err)
	cart, err := f.carts.Add(ctx, token, p.ID, 2, wrap())
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Qty)
	assert.Equal(t, "1", cart.Items[0].WrapAsGift)
	assert.Equal(t, 1, cart.Items[1].Qty)
	assert.Empty(t, cart.Items[1].WrapAsGift)
	assert.Equal(t, "95.00", cart.Subtotal.StringFixed(2))
}

func TestAdminScopeTotalsLeaveBasePrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", true, "5.00")
	_, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)

	adminCtx := hooks.WithScope(ctx, hooks.RequestScope{Admin: true})
	cart, err := f.carts.Load(adminCtx, token)
	require.NoError(t, err)
	assert.Equal(t, "20.00", cart.Items[0].Price.StringFixed(2))

	asyncCtx := hooks.WithScope(ctx, hooks.RequestScope{Admin: true, Async: true})
	cart, err = f.carts.Load(asyncCtx, token)
	require.NoError(t, err)
	assert.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2))
}

func TestUpdateQtyAndRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", true, "5.00")
	cart, err := f.carts.Add(ctx, token, p.ID, 1, wrap())
	require.NoError(t, err)
	key := cart.Items[0].Key

	cart, err = f.carts.UpdateQty(ctx, token, key, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Qty)
	assert.Equal(t, "1", cart.Items[0].WrapAsGift)
	assert.Equal(t, "100.00", cart.Subtotal.StringFixed(2))

	_, err = f.carts.UpdateQty(ctx, token, "missing", 1)
	assert.ErrorIs(t, err, ErrLineNotFound)

	cart, err = f.carts.UpdateQty(ctx, token, key, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.carts.RemoveItem(ctx, token, key)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestAddUnknownProduct(t *testing.T) {
	f := newFixture(t)
	_, err := f.carts.Add(context.Background(), token, 999, 1, wrap())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLoadDropsLinesOfDeletedProducts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keep := f.product(t, "Mug", "20.00", true, "5.00")
	gone := f.product(t, "Vase", "30.00", true, "5.00")

	_, err := f.carts.Add(ctx, token, keep.ID, 1, wrap())
	require.NoError(t, err)
	_, err = f.carts.Add(ctx, token, gone.ID, 1, wrap())
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&entity.Product{}, gone.ID).Error)

	cart, err := f.carts.Load(ctx, token)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, keep.ID, cart.Items[0].ProductID)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.product(t, "Mug", "20.00", false, "")
	_, err := f.carts.Add(ctx, token, p.ID, 1, nil)
	require.NoError(t, err)

	require.NoError(t, f.carts.Clear(ctx, token))

	cart, err := f.carts.Load(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
}
