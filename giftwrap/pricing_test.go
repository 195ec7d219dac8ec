package giftwrap

import (
	"context"
	"testing"

	"storefront/entity"
	"storefront/hooks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(key string, productID uint, base, wrap string) *entity.CartItem {
	return &entity.CartItem{
		Key:        key,
		ProductID:  productID,
		Qty:        1,
		BasePrice:  money(base),
		Price:      money(base),
		WrapAsGift: wrap,
	}
}

func newTestPricer(t *testing.T, store MetaStore) (*Pricer, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry())
	return NewPricer(NewCatalog(store), zap.NewNop(), m), m
}

func TestRecalculateAddsFeeToOptedInLines(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	c := NewCatalog(store)
	require.NoError(t, c.WriteSetting(ctx, 1, true, money("5.00")))
	require.NoError(t, c.WriteSetting(ctx, 2, true, money("0")))

	p, m := newTestPricer(t, store)
	cart := &entity.Cart{Items: []*entity.CartItem{
		line("a", 1, "20.00", "1"),
		line("b", 1, "20.00", ""),
		line("c", 2, "10.00", "1"),
		line("d", 3, "7.00", "1"),
	}}

	p.Recalculate(ctx, cart)

	assert.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2))
	assert.Equal(t, "20.00", cart.Items[1].Price.StringFixed(2), "not opted in")
	assert.Equal(t, "10.00", cart.Items[2].Price.StringFixed(2), "free wrap")
	assert.Equal(t, "7.00", cart.Items[3].Price.StringFixed(2), "wrap not enabled")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PriceAdjustments))
}

func TestRecalculateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, NewCatalog(store).WriteSetting(ctx, 1, true, money("5")))

	p, _ := newTestPricer(t, store)
	cart := &entity.Cart{Items: []*entity.CartItem{line("a", 1, "20", "1")}}

	for i := 0; i < 3; i++ {
		p.Recalculate(ctx, cart)
	}
	assert.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2))
	assert.Equal(t, "20.00", cart.Items[0].BasePrice.StringFixed(2))
}

func TestRecalculateFollowsSettingChanges(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	c := NewCatalog(store)
	require.NoError(t, c.WriteSetting(ctx, 1, true, money("5")))

	p, _ := newTestPricer(t, store)
	cart := &entity.Cart{Items: []*entity.CartItem{line("a", 1, "20", "1")}}
	p.Recalculate(ctx, cart)
	require.Equal(t, "25.00", cart.Items[0].Price.StringFixed(2))

	require.NoError(t, c.WriteSetting(ctx, 1, false, money("5")))
	p.Recalculate(ctx, cart)
	assert.Equal(t, "20.00", cart.Items[0].Price.StringFixed(2))
}

func TestRecalculateScopeGuard(t *testing.T) {
	store := newMemStore()
	require.NoError(t, NewCatalog(store).WriteSetting(context.Background(), 1, true, money("5")))
	p, _ := newTestPricer(t, store)

	tests := []struct {
		name  string
		scope hooks.RequestScope
		want  string
	}{
		{"shopper", hooks.RequestScope{}, "25.00"},
		{"admin page", hooks.RequestScope{Admin: true}, "20.00"},
		{"admin async", hooks.RequestScope{Admin: true, Async: true}, "25.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := hooks.WithScope(context.Background(), tt.scope)
			cart := &entity.Cart{Items: []*entity.CartItem{line("a", 1, "20", "1")}}

			p.Recalculate(ctx, cart)
			assert.Equal(t, tt.want, cart.Items[0].Price.StringFixed(2))
		})
	}
}

func TestRecalculateKeepsBasePriceOnStoreError(t *testing.T) {
	store := newMemStore()
	store.err = errStore
	p, _ := newTestPricer(t, store)

	item := line("a", 1, "20", "1")
	item.Price = money("99")
	cart := &entity.Cart{Items: []*entity.CartItem{item}}

	p.Recalculate(context.Background(), cart)
	assert.Equal(t, "20.00", item.Price.StringFixed(2))
}

func TestRecalculateEmptyCart(t *testing.T) {
	p, _ := newTestPricer(t, newMemStore())
	assert.NotPanics(t, func() { p.Recalculate(context.Background(), &entity.Cart{}) })
}
