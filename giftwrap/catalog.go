package giftwrap

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	MetaEnabled = "_gift_wrap_enabled"
	MetaPrice   = "_gift_wrap_price"

	flagOn = "yes"
)

// MetaStore is the product-scoped key/value storage the settings live in.
type MetaStore interface {
	GetMeta(ctx context.Context, productID uint, key string) (string, bool, error)
	SetMeta(ctx context.Context, productID uint, key, value string) error
}

type Setting struct {
	Enabled bool            `json:"enabled"`
	Fee     decimal.Decimal `json:"fee"`
}

// Charges reports whether opted-in lines of the product cost extra.
func (s Setting) Charges() bool {
	return s.Enabled && s.Fee.IsPositive()
}

type Catalog struct {
	store MetaStore
}

func NewCatalog(store MetaStore) *Catalog {
	return &Catalog{store: store}
}

// ReadSetting treats absent values as disabled and free.
func (c *Catalog) ReadSetting(ctx context.Context, productID uint) (Setting, error) {
	enabled, _, err := c.store.GetMeta(ctx, productID, MetaEnabled)
	if err != nil {
		return Setting{}, errors.Wrapf(err, "read %s of product %d", MetaEnabled, productID)
	}
	price, _, err := c.store.GetMeta(ctx, productID, MetaPrice)
	if err != nil {
		return Setting{}, errors.Wrapf(err, "read %s of product %d", MetaPrice, productID)
	}
	return Setting{Enabled: ParseFlag(enabled), Fee: ParseFee(price)}, nil
}

func (c *Catalog) WriteSetting(ctx context.Context, productID uint, enabled bool, fee decimal.Decimal) error {
	flag := ""
	if enabled {
		flag = flagOn
	}
	if fee.IsNegative() {
		fee = decimal.Zero
	}
	if err := c.store.SetMeta(ctx, productID, MetaEnabled, flag); err != nil {
		return errors.Wrapf(err, "write %s of product %d", MetaEnabled, productID)
	}
	if err := c.store.SetMeta(ctx, productID, MetaPrice, fee.String()); err != nil {
		return errors.Wrapf(err, "write %s of product %d", MetaPrice, productID)
	}
	return nil
}

// SaveFromForm stores the product edit form fields. Missing fields mean an
// unchecked box and a free wrap.
func (c *Catalog) SaveFromForm(ctx context.Context, productID uint, fields map[string]string) error {
	return c.WriteSetting(ctx, productID, ParseFlag(fields[MetaEnabled]), ParseFee(fields[MetaPrice]))
}

func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "1", "true", "on":
		return true
	}
	return false
}

// ParseFee coerces raw input to a non-negative amount; anything else is zero.
func ParseFee(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	fee, err := decimal.NewFromString(raw)
	if err != nil || fee.IsNegative() {
		return decimal.Zero
	}
	return fee
}
