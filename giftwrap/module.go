// Package giftwrap adds an optional gift wrap service to products. Admins
// enable it per product with an optional fee, shoppers opt in when adding to
// the cart, opted-in lines are priced with the fee and the selection is kept
// on the order item.
package giftwrap

import (
	"context"
	"fmt"

	"storefront/entity"
	"storefront/hooks"

	"go.uber.org/zap"
)

const (
	tabKey   = "product_gift_wrap"
	panelID  = "gift_wrap_options"
	tabClass = "show_if_simple"
)

type Options struct {
	CurrencySymbol string
	Logger         *zap.Logger
	Metrics        *Metrics
}

type Module struct {
	catalog  *Catalog
	pricer   *Pricer
	log      *zap.Logger
	metrics  *Metrics
	currency string
}

func New(store MetaStore, opts Options) *Module {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("giftwrap")
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	catalog := NewCatalog(store)
	return &Module{
		catalog:  catalog,
		pricer:   NewPricer(catalog, log, metrics),
		log:      log,
		metrics:  metrics,
		currency: opts.CurrencySymbol,
	}
}

func (m *Module) Catalog() *Catalog { return m.catalog }

// Register subscribes the module to the storefront lifecycle. Call it once
// per registry.
func (m *Module) Register(r *hooks.Registry) {
	r.OnProductDataTabs(m.productDataTabs)
	r.OnProductDataPanels(m.productDataPanels)
	r.OnProcessProductMeta(m.processProductMeta)
	r.OnBeforeAddToCartQuantity(m.shopperField)

	r.OnAddCartItemData(m.addCartItemData)
	r.OnCartItemSessionData(func(_ context.Context, item *entity.CartItem, values map[string]string) {
		PersistToSession(item, values)
	})
	r.OnCartItemFromSession(func(_ context.Context, item *entity.CartItem, values map[string]string) {
		RestoreFromSession(item, values)
	})
	r.OnCartItemData(m.cartItemData)

	r.OnBeforeCalculateTotals(m.pricer.Recalculate)

	r.OnOrderItemCreated(m.orderItemCreated)
	r.OnDisplayMetaKey(DisplayKey)
	r.OnDisplayMetaValue(DisplayValue)
}

func (m *Module) productDataTabs(tabs []hooks.ProductTab) []hooks.ProductTab {
	return append(tabs, hooks.ProductTab{Key: tabKey, Label: Label, Target: panelID, Class: tabClass})
}

func (m *Module) productDataPanels(ctx context.Context, p *entity.Product, panels []hooks.Panel) []hooks.Panel {
	var setting Setting
	if p.ID != 0 {
		s, err := m.catalog.ReadSetting(ctx, p.ID)
		if err != nil {
			m.log.Error("read setting for edit panel", zap.Uint("product_id", p.ID), zap.Error(err))
		}
		setting = s
	}

	return append(panels, hooks.Panel{
		ID: panelID,
		Fields: []hooks.Field{
			{
				ID:          MetaEnabled,
				Type:        "checkbox",
				Label:       "Enable Gift Wrap",
				Description: "Check in order to enable gift wrapping for this product.",
				Value:       flagOn,
				Checked:     setting.Enabled,
			},
			{
				ID:          MetaPrice,
				Type:        "number",
				Label:       "Gift Wrap Fee",
				Description: "Set service fee for this product ( 0 = Free ).",
				Value:       setting.Fee.String(),
				Attributes:  map[string]string{"min": "0", "step": "0.1"},
			},
		},
	})
}

func (m *Module) processProductMeta(ctx context.Context, p *entity.Product, fields map[string]string) error {
	return m.catalog.SaveFromForm(ctx, p.ID, fields)
}

// shopperField offers the opt-in checkbox on the product page of an enabled
// product.
func (m *Module) shopperField(ctx context.Context, p *entity.Product, fields []hooks.Field) []hooks.Field {
	setting, err := m.catalog.ReadSetting(ctx, p.ID)
	if err != nil {
		m.log.Error("read setting for product page", zap.Uint("product_id", p.ID), zap.Error(err))
		return fields
	}
	if !setting.Enabled {
		return fields
	}
	return append(fields, hooks.Field{
		ID:    SelectionKey,
		Name:  SelectionKey,
		Type:  "checkbox",
		Label: fmt.Sprintf("%s (%s)", Label, FormatFee(setting.Fee, m.currency)),
		Value: "1",
	})
}

func (m *Module) addCartItemData(ctx context.Context, item *entity.CartItem, fields map[string]string) {
	value, ok := CaptureOnAddToCart(fields[SelectionKey])
	if !ok {
		return
	}

	setting, err := m.catalog.ReadSetting(ctx, item.ProductID)
	if err != nil {
		m.log.Error("read setting on add to cart, selection dropped", zap.Uint("product_id", item.ProductID), zap.Error(err))
		return
	}
	if !setting.Enabled {
		m.log.Debug("gift wrap not offered, selection dropped", zap.Uint("product_id", item.ProductID))
		return
	}

	MergeIntoCartItem(item, value)
	m.metrics.Selections.Inc()
}

func (m *Module) cartItemData(ctx context.Context, data []hooks.ItemData, item *entity.CartItem) []hooks.ItemData {
	if !Selected(item.WrapAsGift) {
		return data
	}
	setting, err := m.catalog.ReadSetting(ctx, item.ProductID)
	if err != nil {
		m.log.Error("read setting for cart summary", zap.Uint("product_id", item.ProductID), zap.Error(err))
		return data
	}
	if !setting.Enabled {
		return data
	}
	return append(data, hooks.ItemData{
		Name:  Label,
		Value: fmt.Sprintf("%s (%s)", LabelYes, FormatFee(setting.Fee, m.currency)),
	})
}

func (m *Module) orderItemCreated(ctx context.Context, store hooks.OrderItemMetaStore, itemID uint, item *entity.CartItem) error {
	annotated, err := OnOrderItemCreated(ctx, store, itemID, item)
	if err != nil {
		return err
	}
	if annotated {
		m.metrics.Annotations.Inc()
	}
	return nil
}
