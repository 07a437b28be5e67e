package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"costela-bot/internal/catalog"
)

// Session is everything one customer has on screen: cart, fulfillment mode
// and the checkout form. The zero value is an empty pickup session.
type Session struct {
	Cart     Cart            `json:"cart"`
	Mode     FulfillmentMode `json:"mode,omitempty"`
	Checkout Checkout        `json:"checkout"`
}

func NewSession() *Session {
	return &Session{
		Mode:     Pickup,
		Checkout: Checkout{State: CheckoutClosed},
	}
}

// Shop carries the fixed data every outgoing order needs.
type Shop struct {
	Name           string
	WhatsAppNumber string
	DeliveryFee    decimal.Decimal
}

// Placed is a submitted order, ready to be delivered.
type Placed struct {
	Message  string
	Link     string
	Mode     FulfillmentMode
	Total    decimal.Decimal
	Customer CustomerInfo
	Items    []LineItem
}

// Sender delivers a placed order. It runs before the session is reset, so a
// failing sender leaves the cart and the form as they were.
type Sender interface {
	SendOrder(ctx context.Context, placed Placed) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, placed Placed) error

func (f SenderFunc) SendOrder(ctx context.Context, placed Placed) error {
	return f(ctx, placed)
}

func (s *Session) SetMode(mode FulfillmentMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown fulfillment mode %q", mode)
	}
	s.Mode = mode
	return nil
}

// AddToCart commits the staged quantity of productID.
func (s *Session) AddToCart(cat *catalog.Catalog, productID string) (bool, error) {
	p, ok := cat.ByID(productID)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	return s.Cart.Commit(p), nil
}

func (s *Session) Total(fee decimal.Decimal) decimal.Decimal {
	return ComputeTotal(s.Cart, s.Mode, fee)
}

func (s *Session) View(fee decimal.Decimal) View {
	return Project(s.Cart, s.Mode, fee)
}

// OpenCheckout shows the form for the current mode. An empty cart cannot be
// checked out.
func (s *Session) OpenCheckout() error {
	if s.Cart.IsEmpty() {
		return ErrEmptyCart
	}
	mode := s.Mode
	if !mode.Valid() {
		mode = Pickup
	}
	s.Checkout.open(mode)
	return nil
}

// CancelCheckout closes the form and drops what was typed. The cart stays.
func (s *Session) CancelCheckout() {
	s.Checkout.reset()
}

// SubmitCheckout validates the form, hands the composed order to sender and,
// once delivered, clears the cart and the form.
func (s *Session) SubmitCheckout(ctx context.Context, shop Shop, sender Sender) (Placed, error) {
	if !s.Checkout.IsOpen() {
		return Placed{}, ErrCheckoutClosed
	}
	if s.Cart.IsEmpty() {
		return Placed{}, ErrEmptyCart
	}

	section := s.Checkout.Section
	customer := s.Checkout.Customer
	if err := customer.Validate(section); err != nil {
		return Placed{}, err
	}

	message := ComposeMessage(shop.Name, s.Cart, section, customer, shop.DeliveryFee)
	placed := Placed{
		Message:  message,
		Link:     DeepLink(shop.WhatsAppNumber, message),
		Mode:     section,
		Total:    ComputeTotal(s.Cart, section, shop.DeliveryFee),
		Customer: customer,
		Items:    append([]LineItem(nil), s.Cart.Items...),
	}

	if err := sender.SendOrder(ctx, placed); err != nil {
		return Placed{}, fmt.Errorf("send order: %w", err)
	}

	s.Checkout.reset()
	s.Cart.Clear()
	return placed, nil
}
