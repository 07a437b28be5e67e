package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costela-bot/internal/catalog"
)

func TestProjectEmptyCartHidesFee(t *testing.T) {
	for _, mode := range []FulfillmentMode{Pickup, Delivery} {
		v := Project(Cart{}, mode, catalog.DeliveryFee)
		assert.True(t, v.Empty, mode)
		assert.False(t, v.ShowDeliveryFee, mode)
		assert.Empty(t, v.Rows, mode)
		assert.Equal(t, "0.00", v.Total, mode)
	}
}

func TestProjectRows(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductCasa, 2)
	add(t, s, catalog.ProductPremium, 1)
	require.NoError(t, s.SetMode(Delivery))

	v := s.View(catalog.DeliveryFee)

	require.Len(t, v.Rows, 2)
	assert.Equal(t, Row{ProductID: catalog.ProductCasa, Name: "Pão da Casa", UnitPrice: "20.00", Quantity: 2, Total: "40.00"}, v.Rows[0])
	assert.Equal(t, Row{ProductID: catalog.ProductPremium, Name: "Costela Premium", UnitPrice: "29.90", Quantity: 1, Total: "29.90"}, v.Rows[1])
	assert.True(t, v.ShowDeliveryFee)
	assert.Equal(t, "5.00", v.DeliveryFee)
	assert.Equal(t, "69.90", v.Subtotal)
	assert.Equal(t, "74.90", v.Total)
}

func TestProjectIsIdempotent(t *testing.T) {
	s := NewSession()
	add(t, s, catalog.ProductTiti, 3)

	first := s.View(catalog.DeliveryFee)
	second := s.View(catalog.DeliveryFee)

	assert.Equal(t, first, second)
	assert.Len(t, s.Cart.Items, 1)
}
