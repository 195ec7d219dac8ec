package hooks

import "context"

// RequestScope tells handlers which kind of request fired them.
type RequestScope struct {
	Admin bool
	Async bool
}

type scopeKey struct{}

func WithScope(ctx context.Context, s RequestScope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the zero scope (shopper, synchronous) when none was set.
func ScopeFrom(ctx context.Context) RequestScope {
	if s, ok := ctx.Value(scopeKey{}).(RequestScope); ok {
		return s
	}
	return RequestScope{}
}

// ShopperTotals reports whether totals calculated in this scope may mutate
// shopper-facing cart prices.
func (s RequestScope) ShopperTotals() bool {
	return !s.Admin || s.Async
}
