package giftwrap

import (
	"context"

	"storefront/entity"
	"storefront/hooks"

	"go.uber.org/zap"
)

type Pricer struct {
	catalog *Catalog
	log     *zap.Logger
	metrics *Metrics
}

func NewPricer(catalog *Catalog, log *zap.Logger, metrics *Metrics) *Pricer {
	return &Pricer{catalog: catalog, log: log, metrics: metrics}
}

// Recalculate sets every line's effective price from its base price, adding
// the product's fee to opted-in lines. Lines are never priced off their
// current price, so running it repeatedly yields the same cart.
func (p *Pricer) Recalculate(ctx context.Context, cart *entity.Cart) {
	if !hooks.ScopeFrom(ctx).ShopperTotals() {
		return
	}

	for _, item := range cart.Items {
		item.Price = item.BasePrice
		if !Selected(item.WrapAsGift) {
			continue
		}

		setting, err := p.catalog.ReadSetting(ctx, item.ProductID)
		if err != nil {
			p.log.Error("gift wrap setting unavailable, leaving base price",
				zap.Uint("product_id", item.ProductID), zap.Error(err))
			continue
		}
		if !setting.Charges() {
			continue
		}

		item.Price = item.BasePrice.Add(setting.Fee)
		p.metrics.PriceAdjustments.Inc()
	}
}
