package giftwrap

import (
	"context"

	"storefront/entity"
	"storefront/hooks"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	Label     = "Gift Wrap"
	LabelYes  = "Yes"
	LabelFree = "FREE"
)

// OnOrderItemCreated copies the line's selection onto the new order item.
func OnOrderItemCreated(ctx context.Context, store hooks.OrderItemMetaStore, itemID uint, item *entity.CartItem) (bool, error) {
	if !Selected(item.WrapAsGift) {
		return false, nil
	}
	if err := store.AddMeta(ctx, itemID, SelectionKey, item.WrapAsGift); err != nil {
		return false, errors.Wrapf(err, "annotate order item %d", itemID)
	}
	return true, nil
}

func DisplayKey(key string) string {
	if key == SelectionKey {
		return Label
	}
	return key
}

// DisplayValue hides the stored flag; any selection reads as "Yes".
func DisplayValue(value string, meta entity.OrderItemMeta) string {
	if meta.MetaKey == SelectionKey {
		return LabelYes
	}
	return value
}

func FormatFee(fee decimal.Decimal, symbol string) string {
	if !fee.IsPositive() {
		return LabelFree
	}
	return symbol + fee.StringFixed(2)
}
