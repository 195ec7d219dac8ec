package giftwrap

import (
	"context"
	"testing"

	"storefront/entity"
	"storefront/hooks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistered(t *testing.T) (*hooks.Registry, *memStore, *Module) {
	t.Helper()
	store := newMemStore()
	m := New(store, Options{CurrencySymbol: "$", Metrics: NewMetrics(prometheus.NewRegistry())})
	r := hooks.NewRegistry()
	m.Register(r)
	return r, store, m
}

func simple(id uint) *entity.Product {
	p := &entity.Product{Name: "Mug", Type: entity.ProductTypeSimple, Price: money("20")}
	p.ID = id
	return p
}

func TestAdminEditHooks(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)
	require.NoError(t, m.Catalog().WriteSetting(ctx, 1, true, money("2.5")))

	tabs := r.ProductDataTabs([]hooks.ProductTab{{Key: "general"}})
	require.Len(t, tabs, 2)
	assert.Equal(t, hooks.ProductTab{Key: "product_gift_wrap", Label: "Gift Wrap", Target: "gift_wrap_options", Class: "show_if_simple"}, tabs[1])

	panels := r.ProductDataPanels(ctx, simple(1))
	require.Len(t, panels, 1)
	require.Len(t, panels[0].Fields, 2)
	assert.Equal(t, MetaEnabled, panels[0].Fields[0].ID)
	assert.True(t, panels[0].Fields[0].Checked)
	assert.Equal(t, MetaPrice, panels[0].Fields[1].ID)
	assert.Equal(t, "2.5", panels[0].Fields[1].Value)
	assert.Equal(t, "0", panels[0].Fields[1].Attributes["min"])
}

func TestProcessProductMetaWritesSetting(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)

	require.NoError(t, r.ProcessProductMeta(ctx, simple(4), map[string]string{MetaEnabled: "yes", MetaPrice: "3"}))

	s, err := m.Catalog().ReadSetting(ctx, 4)
	require.NoError(t, err)
	assert.True(t, s.Enabled)
	assert.Equal(t, "3", s.Fee.String())
}

func TestShopperFieldOnlyWhenEnabled(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)

	assert.Empty(t, r.BeforeAddToCartQuantity(ctx, simple(1)))

	require.NoError(t, m.Catalog().WriteSetting(ctx, 1, true, money("5")))
	fields := r.BeforeAddToCartQuantity(ctx, simple(1))
	require.Len(t, fields, 1)
	assert.Equal(t, "wrap_as_gift", fields[0].Name)
	assert.Equal(t, "1", fields[0].Value)
	assert.Equal(t, "Gift Wrap ($5.00)", fields[0].Label)

	require.NoError(t, m.Catalog().WriteSetting(ctx, 1, true, money("0")))
	fields = r.BeforeAddToCartQuantity(ctx, simple(1))
	require.Len(t, fields, 1)
	assert.Equal(t, "Gift Wrap (FREE)", fields[0].Label)
}

func TestAddCartItemDataGate(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)
	require.NoError(t, m.Catalog().WriteSetting(ctx, 1, true, money("5")))

	enabled := &entity.CartItem{ProductID: 1}
	r.AddCartItemData(ctx, enabled, map[string]string{SelectionKey: "1"})
	assert.Equal(t, "1", enabled.WrapAsGift)

	notOffered := &entity.CartItem{ProductID: 2}
	r.AddCartItemData(ctx, notOffered, map[string]string{SelectionKey: "1"})
	assert.Empty(t, notOffered.WrapAsGift)

	unchecked := &entity.CartItem{ProductID: 1}
	r.AddCartItemData(ctx, unchecked, map[string]string{})
	assert.Empty(t, unchecked.WrapAsGift)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.Selections))
}

func TestSessionHooksRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newRegistered(t)

	values := r.CartItemSessionData(ctx, &entity.CartItem{WrapAsGift: "1"})
	assert.Equal(t, map[string]string{SelectionKey: "1"}, values)
	assert.Nil(t, r.CartItemSessionData(ctx, &entity.CartItem{}))

	restored := &entity.CartItem{}
	r.CartItemFromSession(ctx, restored, values)
	assert.Equal(t, "1", restored.WrapAsGift)
}

func TestCartItemDataSummary(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)
	require.NoError(t, m.Catalog().WriteSetting(ctx, 1, true, money("5")))
	require.NoError(t, m.Catalog().WriteSetting(ctx, 2, true, money("0")))

	assert.Equal(t, []hooks.ItemData{{Name: "Gift Wrap", Value: "Yes ($5.00)"}},
		r.CartItemData(ctx, &entity.CartItem{ProductID: 1, WrapAsGift: "1"}))
	assert.Equal(t, []hooks.ItemData{{Name: "Gift Wrap", Value: "Yes (FREE)"}},
		r.CartItemData(ctx, &entity.CartItem{ProductID: 2, WrapAsGift: "1"}))
	assert.Empty(t, r.CartItemData(ctx, &entity.CartItem{ProductID: 1}))
}

func TestOrderHooks(t *testing.T) {
	ctx := context.Background()
	r, _, m := newRegistered(t)
	store := &memOrderStore{}

	require.NoError(t, r.OrderItemCreated(ctx, store, 5, &entity.CartItem{WrapAsGift: "1"}))
	require.NoError(t, r.OrderItemCreated(ctx, store, 6, &entity.CartItem{}))
	require.Len(t, store.rows, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.Annotations))

	meta := entity.OrderItemMeta{OrderItemID: 5, MetaKey: store.rows[0].Key, MetaValue: store.rows[0].Value}
	assert.Equal(t, "Gift Wrap", r.DisplayMetaKey(meta.MetaKey))
	assert.Equal(t, "Yes", r.DisplayMetaValue(meta))
}
