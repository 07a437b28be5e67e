package order

import "github.com/shopspring/decimal"

type FulfillmentMode string

const (
	Pickup   FulfillmentMode = "pickup"
	Delivery FulfillmentMode = "delivery"
)

func (m FulfillmentMode) Valid() bool {
	return m == Pickup || m == Delivery
}

// Label is the order type as written in the outgoing message.
func (m FulfillmentMode) Label() string {
	if m == Delivery {
		return "Delivery"
	}
	return "Retirada"
}

// ChargesFee reports whether the delivery fee applies to cart under mode.
// An empty cart is never charged.
func ChargesFee(cart Cart, mode FulfillmentMode) bool {
	return mode == Delivery && !cart.IsEmpty()
}

func ComputeTotal(cart Cart, mode FulfillmentMode, fee decimal.Decimal) decimal.Decimal {
	total := cart.Subtotal()
	if ChargesFee(cart, mode) {
		total = total.Add(fee)
	}
	return total
}
