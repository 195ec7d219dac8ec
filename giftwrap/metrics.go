package giftwrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Selections       prometheus.Counter
	PriceAdjustments prometheus.Counter
	Annotations      prometheus.Counter
}

// NewMetrics registers the counters with reg; a nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Selections: f.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "gift_wrap",
			Name:      "selections_total",
			Help:      "Cart lines that were added with gift wrap selected.",
		}),
		PriceAdjustments: f.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "gift_wrap",
			Name:      "price_adjustments_total",
			Help:      "Cart line prices raised by a gift wrap fee during totals calculation.",
		}),
		Annotations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "gift_wrap",
			Name:      "order_annotations_total",
			Help:      "Order items annotated with a gift wrap selection.",
		}),
	}
}
