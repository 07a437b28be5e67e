// Package order holds the shop's state and policy: cart, fulfillment mode,
// checkout form and the outgoing order message. It never talks to a UI.
package order

import (
	"github.com/shopspring/decimal"

	"costela-bot/internal/catalog"
)

type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart keeps line items in the order they were first added.
// Pending holds the quantity selected next to each product but not yet added.
type Cart struct {
	Items   []LineItem     `json:"items"`
	Pending map[string]int `json:"pending,omitempty"`
}

// SetPendingQuantity moves the staging counter of a product by delta, never below zero.
func (c *Cart) SetPendingQuantity(productID string, delta int) int {
	if c.Pending == nil {
		c.Pending = make(map[string]int)
	}
	qty := c.Pending[productID] + delta
	if qty <= 0 {
		delete(c.Pending, productID)
		return 0
	}
	c.Pending[productID] = qty
	return qty
}

func (c *Cart) PendingQuantity(productID string) int {
	return c.Pending[productID]
}

// Commit moves the staged quantity of p into the cart. It reports false when
// nothing was staged.
func (c *Cart) Commit(p catalog.Product) bool {
	qty := c.PendingQuantity(p.ID)
	if qty <= 0 {
		return false
	}

	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity += qty
	} else {
		c.Items = append(c.Items, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  qty,
		})
	}
	delete(c.Pending, p.ID)
	return true
}

// AdjustLineItem changes the quantity of an item already in the cart and drops
// it once the quantity reaches zero. Unknown ids are ignored.
func (c *Cart) AdjustLineItem(productID string, delta int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}

	c.Items[i].Quantity += delta
	if c.Items[i].Quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	return true
}

func (c *Cart) Item(productID string) (LineItem, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Total())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear empties the cart. Staged quantities are left alone.
func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) index(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
