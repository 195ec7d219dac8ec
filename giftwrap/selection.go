package giftwrap

import (
	"strings"

	"storefront/entity"
)

// SelectionKey names the shopper's opt-in in request fields, cart session
// values and order item meta.
const SelectionKey = "wrap_as_gift"

// Selected reports whether a stored flag opts in. Blank and "0" do not.
func Selected(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}

// CaptureOnAddToCart returns the sanitized submitted flag, or false when
// nothing usable was submitted.
func CaptureOnAddToCart(submitted string) (string, bool) {
	v := SanitizeText(submitted)
	if !Selected(v) {
		return "", false
	}
	return v, true
}

func MergeIntoCartItem(item *entity.CartItem, value string) {
	if !Selected(value) {
		return
	}
	item.WrapAsGift = value
}

// RestoreFromSession copies the stored selection onto a rehydrated line. A
// missing key drops the selection.
func RestoreFromSession(item *entity.CartItem, values map[string]string) {
	if v, ok := values[SelectionKey]; ok && Selected(v) {
		item.WrapAsGift = v
	}
}

func PersistToSession(item *entity.CartItem, values map[string]string) {
	if Selected(item.WrapAsGift) {
		values[SelectionKey] = item.WrapAsGift
	}
}
