package entity

import (
	"github.com/shopspring/decimal"
)

// Cart is rebuilt from a CartSession on every request and never stored as is.
type Cart struct {
	Token    string          `json:"token"`
	UserID   uint            `json:"userId"`
	Items    []*CartItem     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartItem struct {
	Key       string          `json:"key"`
	ProductID uint            `json:"productId"`
	Product   *Product        `json:"-"`
	Qty       int             `json:"qty"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Price     decimal.Decimal `json:"price"`

	// WrapAsGift holds the shopper's gift wrap selection; empty means none.
	WrapAsGift string `json:"wrapAsGift,omitempty"`
}

func (it *CartItem) LineTotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Qty)))
}

func (c *Cart) Find(key string) *CartItem {
	for _, it := range c.Items {
		if it.Key == key {
			return it
		}
	}
	return nil
}
