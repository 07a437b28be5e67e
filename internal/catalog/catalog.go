// Package catalog holds the fixed menu of the shop.
package catalog

import "github.com/shopspring/decimal"

const (
	ProductCasa    = "casa"
	ProductTiti    = "titi"
	ProductPremium = "premium"
)

// DeliveryFee is charged once per delivery order with at least one item.
var DeliveryFee = decimal.RequireFromString("5.00")

type Product struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
}

// Catalog is a read-only, ordered product list.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func New(products ...Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// Default returns the shop menu.
func Default() *Catalog {
	return New(
		Product{ID: ProductCasa, Name: "Pão da Casa", UnitPrice: decimal.RequireFromString("20.00")},
		Product{ID: ProductTiti, Name: "Pão do Titi", UnitPrice: decimal.RequireFromString("25.00")},
		Product{ID: ProductPremium, Name: "Costela Premium", UnitPrice: decimal.RequireFromString("29.90")},
	)
}

func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in display order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}
