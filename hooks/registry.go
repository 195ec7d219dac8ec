// Package hooks holds the storefront's lifecycle extension points. Filters
// receive a value and return the (possibly changed) value; actions only run.
// Handlers run in registration order.
package hooks

import (
	"context"

	"storefront/entity"
)

type ProductTab struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Target string `json:"target"`
	Class  string `json:"class,omitempty"`
}

type Field struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	Type        string            `json:"type"`
	Label       string            `json:"label"`
	Description string            `json:"description,omitempty"`
	Value       string            `json:"value,omitempty"`
	Checked     bool              `json:"checked,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

type Panel struct {
	ID     string  `json:"id"`
	Fields []Field `json:"fields"`
}

// ItemData is one summary line shown under a cart item.
type ItemData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type OrderItemMetaStore interface {
	AddMeta(ctx context.Context, itemID uint, key, value string) error
}

type (
	ProductDataTabsFunc         func(tabs []ProductTab) []ProductTab
	ProductDataPanelsFunc       func(ctx context.Context, p *entity.Product, panels []Panel) []Panel
	ProcessProductMetaFunc      func(ctx context.Context, p *entity.Product, fields map[string]string) error
	BeforeAddToCartQuantityFunc func(ctx context.Context, p *entity.Product, fields []Field) []Field
	AddCartItemDataFunc         func(ctx context.Context, item *entity.CartItem, fields map[string]string)
	CartItemSessionDataFunc     func(ctx context.Context, item *entity.CartItem, values map[string]string)
	CartItemFromSessionFunc     func(ctx context.Context, item *entity.CartItem, values map[string]string)
	CartItemDataFunc            func(ctx context.Context, data []ItemData, item *entity.CartItem) []ItemData
	BeforeCalculateTotalsFunc   func(ctx context.Context, cart *entity.Cart)
	OrderItemCreatedFunc        func(ctx context.Context, store OrderItemMetaStore, itemID uint, item *entity.CartItem) error
	DisplayMetaKeyFunc          func(key string) string
	DisplayMetaValueFunc        func(value string, meta entity.OrderItemMeta) string
)

type Registry struct {
	productDataTabs         []ProductDataTabsFunc
	productDataPanels       []ProductDataPanelsFunc
	processProductMeta      []ProcessProductMetaFunc
	beforeAddToCartQuantity []BeforeAddToCartQuantityFunc
	addCartItemData         []AddCartItemDataFunc
	cartItemSessionData     []CartItemSessionDataFunc
	cartItemFromSession     []CartItemFromSessionFunc
	cartItemData            []CartItemDataFunc
	beforeCalculateTotals   []BeforeCalculateTotalsFunc
	orderItemCreated        []OrderItemCreatedFunc
	displayMetaKey          []DisplayMetaKeyFunc
	displayMetaValue        []DisplayMetaValueFunc
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) OnProductDataTabs(fn ProductDataTabsFunc) {
	r.productDataTabs = append(r.productDataTabs, fn)
}

func (r *Registry) OnProductDataPanels(fn ProductDataPanelsFunc) {
	r.productDataPanels = append(r.productDataPanels, fn)
}

// OnProcessProductMeta runs when a simple product's edit form is saved.
func (r *Registry) OnProcessProductMeta(fn ProcessProductMetaFunc) {
	r.processProductMeta = append(r.processProductMeta, fn)
}

func (r *Registry) OnBeforeAddToCartQuantity(fn BeforeAddToCartQuantityFunc) {
	r.beforeAddToCartQuantity = append(r.beforeAddToCartQuantity, fn)
}

func (r *Registry) OnAddCartItemData(fn AddCartItemDataFunc) {
	r.addCartItemData = append(r.addCartItemData, fn)
}

func (r *Registry) OnCartItemSessionData(fn CartItemSessionDataFunc) {
	r.cartItemSessionData = append(r.cartItemSessionData, fn)
}

func (r *Registry) OnCartItemFromSession(fn CartItemFromSessionFunc) {
	r.cartItemFromSession = append(r.cartItemFromSession, fn)
}

func (r *Registry) OnCartItemData(fn CartItemDataFunc) {
	r.cartItemData = append(r.cartItemData, fn)
}

func (r *Registry) OnBeforeCalculateTotals(fn BeforeCalculateTotalsFunc) {
	r.beforeCalculateTotals = append(r.beforeCalculateTotals, fn)
}

func (r *Registry) OnOrderItemCreated(fn OrderItemCreatedFunc) {
	r.orderItemCreated = append(r.orderItemCreated, fn)
}

func (r *Registry) OnDisplayMetaKey(fn DisplayMetaKeyFunc) {
	r.displayMetaKey = append(r.displayMetaKey, fn)
}

func (r *Registry) OnDisplayMetaValue(fn DisplayMetaValueFunc) {
	r.displayMetaValue = append(r.displayMetaValue, fn)
}
