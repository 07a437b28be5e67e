package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costela-bot/internal/catalog"
)

var testShop = Shop{
	Name:           "Costela do Titi",
	WhatsAppNumber: "5511999999999",
	DeliveryFee:    catalog.DeliveryFee,
}

type recordingSender struct {
	sent []Placed
	err  error
}

func (r *recordingSender) SendOrder(_ context.Context, placed Placed) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, placed)
	return nil
}

func add(t *testing.T, s *Session, id string, qty int) {
	t.Helper()
	s.Cart.SetPendingQuantity(id, qty)
	ok, err := s.AddToCart(catalog.Default(), id)
	require.NoError(t, err)
	require.True(t, ok)
}

func fillAll(t *testing.T, s *Session, values ...string) {
	t.Helper()
	for _, v := range values {
		_, err := s.Checkout.Fill(v)
		require.NoError(t, err, "filling %q at %q", v, s.Checkout.Focus)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	s := NewSession()
	_, err := s.AddToCart(catalog.Default(), "croissant")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestSetModeRejectsUnknown(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.SetMode("drone"))
	assert.Equal(t, Pickup, s.Mode)
}

func TestOpenCheckoutOnEmptyCart(t *testing.T) {
	s := NewSession()

	err := s.OpenCheckout()

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.False(t, s.Checkout.IsOpen())
	assert.Equal(t, CheckoutClosed, s.Checkout.State)
}

func TestOpenCheckoutSectionFixedAtOpen(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 1)
	require.NoError(t, s.SetMode(Delivery))

	require.NoError(t, s.OpenCheckout())
	require.NoError(t, s.SetMode(Pickup))

	assert.Equal(t, Delivery, s.Checkout.Section)
	assert.Equal(t, FieldName, s.Checkout.Focus)
}

func TestCancelCheckoutKeepsCart(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 2)
	require.NoError(t, s.OpenCheckout())
	fillAll(t, s, "Maria")

	s.CancelCheckout()

	assert.False(t, s.Checkout.IsOpen())
	assert.Empty(t, s.Checkout.Customer.Name)
	assert.Len(t, s.Cart.Items, 1)
}

func TestSubmitWithoutNameFailsMissingContact(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 2)
	require.NoError(t, s.OpenCheckout())
	s.Checkout.Customer.Phone = "(11) 99999-8888"
	before := s.Cart

	sender := &recordingSender{}
	_, err := s.SubmitCheckout(context.Background(), testShop, sender)

	assert.ErrorIs(t, err, ErrMissingContact)
	assert.True(t, s.Checkout.IsOpen())
	assert.Equal(t, before, s.Cart)
	assert.Empty(t, sender.sent)
}

func TestSubmitDeliveryWithoutNeighborhoodFailsIncompleteAddress(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductPremium, 1)
	require.NoError(t, s.SetMode(Delivery))
	require.NoError(t, s.OpenCheckout())
	s.Checkout.Customer = CustomerInfo{
		Name:   "João",
		Phone:  "(11) 99999-8888",
		Street: "Av. Paulista",
		Number: "1000",
		City:   "São Paulo",
		State:  "SP",
	}
	customer := s.Checkout.Customer
	cart := s.Cart

	sender := &recordingSender{}
	_, err := s.SubmitCheckout(context.Background(), testShop, sender)

	assert.ErrorIs(t, err, ErrIncompleteAddress)
	assert.True(t, s.Checkout.IsOpen())
	assert.Equal(t, customer, s.Checkout.Customer)
	assert.Equal(t, cart, s.Cart)
	assert.Empty(t, sender.sent)

	require.True(t, s.Checkout.FocusFirstMissing())
	assert.Equal(t, FieldNeighborhood, s.Checkout.Focus)
}

func TestSubmitWhenClosed(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 1)

	_, err := s.SubmitCheckout(context.Background(), testShop, &recordingSender{})
	assert.ErrorIs(t, err, ErrCheckoutClosed)
}

func TestSubmitSenderFailureKeepsSession(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 1)
	require.NoError(t, s.OpenCheckout())
	fillAll(t, s, "Maria", "11999998888", "-")

	boom := errors.New("telegram down")
	_, err := s.SubmitCheckout(context.Background(), testShop, &recordingSender{err: boom})

	assert.ErrorIs(t, err, boom)
	assert.True(t, s.Checkout.IsOpen())
	assert.Equal(t, "Maria", s.Checkout.Customer.Name)
	assert.False(t, s.Cart.IsEmpty())
}

func TestEndToEndDeliveryOrder(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 2)
	add(t, s, catalog.ProductPremium, 1)

	assert.Equal(t, "69.90", s.Total(catalog.DeliveryFee).StringFixed(2))

	require.NoError(t, s.SetMode(Delivery))
	assert.Equal(t, "74.90", s.Total(catalog.DeliveryFee).StringFixed(2))

	require.NoError(t, s.OpenCheckout())
	fillAll(t, s, "Maria", "11999998888", "-",
		"Av. Paulista", "1000", "apto 12", "Bela Vista", "São Paulo", "sp", "sem cebola")
	require.Equal(t, FieldReview, s.Checkout.Focus)

	sender := &recordingSender{}
	placed, err := s.SubmitCheckout(context.Background(), testShop, sender)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	assert.Contains(t, placed.Message, "*Total: R$ 74.90*")
	assert.NotContains(t, placed.Message, "69.90")
	assert.Contains(t, placed.Message, "2x Pão da Casa - R$ 40.00")
	assert.Contains(t, placed.Message, "*Endereço:* Av. Paulista, 1000, apto 12 - Bela Vista, São Paulo-SP")
	assert.True(t, strings.HasPrefix(placed.Link, "https://wa.me/5511999999999?text="))
	assert.Equal(t, "74.90", placed.Total.StringFixed(2))

	assert.True(t, s.Cart.IsEmpty())
	assert.False(t, s.Checkout.IsOpen())
	assert.Equal(t, CustomerInfo{}, s.Checkout.Customer)
}
