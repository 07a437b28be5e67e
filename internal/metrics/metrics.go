package metrics

import "github.com/prometheus/client_golang/prometheus"

// Shop records what customers do with the storefront.
type Shop struct {
	lookups    *prometheus.CounterVec
	orders     *prometheus.CounterVec
	rejections *prometheus.CounterVec
	cart       *prometheus.CounterVec
}

// NewShop registers the storefront collectors on reg. A nil registerer yields a
// recorder that drops everything.
func NewShop(reg prometheus.Registerer) *Shop {
	if reg == nil {
		return &Shop{}
	}
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "address_lookups_total",
		Help: "Postal code lookups by outcome.",
	}, []string{"outcome"})
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Orders handed to the messaging link, by fulfillment mode.",
	}, []string{"mode"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_rejections_total",
		Help: "Checkout attempts refused by validation.",
	}, []string{"reason"})
	cart := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_updates_total",
		Help: "Storefront interactions that changed the session.",
	}, []string{"action"})
	reg.MustRegister(lookups, orders, rejections, cart)
	return &Shop{
		lookups:    lookups,
		orders:     orders,
		rejections: rejections,
		cart:       cart,
	}
}

func (s *Shop) LookupOutcome(outcome string) {
	if s == nil || s.lookups == nil {
		return
	}
	s.lookups.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (s *Shop) OrderSubmitted(mode string) {
	if s == nil || s.orders == nil {
		return
	}
	s.orders.WithLabelValues(normalizeLabel(mode)).Inc()
}

func (s *Shop) CheckoutRejected(reason string) {
	if s == nil || s.rejections == nil {
		return
	}
	s.rejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (s *Shop) CartUpdated(action string) {
	if s == nil || s.cart == nil {
		return
	}
	s.cart.WithLabelValues(normalizeLabel(action)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
