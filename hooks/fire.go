package hooks

import (
	"context"

	"storefront/entity"
)

func (r *Registry) ProductDataTabs(tabs []ProductTab) []ProductTab {
	for _, fn := range r.productDataTabs {
		tabs = fn(tabs)
	}
	return tabs
}

func (r *Registry) ProductDataPanels(ctx context.Context, p *entity.Product) []Panel {
	panels := []Panel{}
	for _, fn := range r.productDataPanels {
		panels = fn(ctx, p, panels)
	}
	return panels
}

func (r *Registry) ProcessProductMeta(ctx context.Context, p *entity.Product, fields map[string]string) error {
	for _, fn := range r.processProductMeta {
		if err := fn(ctx, p, fields); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) BeforeAddToCartQuantity(ctx context.Context, p *entity.Product) []Field {
	fields := []Field{}
	for _, fn := range r.beforeAddToCartQuantity {
		fields = fn(ctx, p, fields)
	}
	return fields
}

func (r *Registry) AddCartItemData(ctx context.Context, item *entity.CartItem, fields map[string]string) {
	for _, fn := range r.addCartItemData {
		fn(ctx, item, fields)
	}
}

func (r *Registry) CartItemSessionData(ctx context.Context, item *entity.CartItem) map[string]string {
	values := map[string]string{}
	for _, fn := range r.cartItemSessionData {
		fn(ctx, item, values)
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func (r *Registry) CartItemFromSession(ctx context.Context, item *entity.CartItem, values map[string]string) {
	if values == nil {
		values = map[string]string{}
	}
	for _, fn := range r.cartItemFromSession {
		fn(ctx, item, values)
	}
}

func (r *Registry) CartItemData(ctx context.Context, item *entity.CartItem) []ItemData {
	data := []ItemData{}
	for _, fn := range r.cartItemData {
		data = fn(ctx, data, item)
	}
	return data
}

func (r *Registry) BeforeCalculateTotals(ctx context.Context, cart *entity.Cart) {
	for _, fn := range r.beforeCalculateTotals {
		fn(ctx, cart)
	}
}

func (r *Registry) OrderItemCreated(ctx context.Context, store OrderItemMetaStore, itemID uint, item *entity.CartItem) error {
	for _, fn := range r.orderItemCreated {
		if err := fn(ctx, store, itemID, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) DisplayMetaKey(key string) string {
	for _, fn := range r.displayMetaKey {
		key = fn(key)
	}
	return key
}

func (r *Registry) DisplayMetaValue(meta entity.OrderItemMeta) string {
	value := meta.MetaValue
	for _, fn := range r.displayMetaValue {
		value = fn(value, meta)
	}
	return value
}
