package order

import "github.com/shopspring/decimal"

type Row struct {
	ProductID string
	Name      string
	UnitPrice string
	Quantity  int
	Total     string
}

// View is the cart summary as shown to the customer. Amounts are already
// formatted with two decimals.
type View struct {
	Mode            FulfillmentMode
	Rows            []Row
	Empty           bool
	ShowDeliveryFee bool
	DeliveryFee     string
	Subtotal        string
	Total           string
}

// Project renders cart under mode. It has no side effects.
func Project(cart Cart, mode FulfillmentMode, fee decimal.Decimal) View {
	v := View{
		Mode:            mode,
		Empty:           cart.IsEmpty(),
		ShowDeliveryFee: ChargesFee(cart, mode),
		DeliveryFee:     Money(fee),
		Subtotal:        Money(cart.Subtotal()),
		Total:           Money(ComputeTotal(cart, mode, fee)),
	}
	for _, item := range cart.Items {
		v.Rows = append(v.Rows, Row{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: Money(item.UnitPrice),
			Quantity:  item.Quantity,
			Total:     Money(item.Total()),
		})
	}
	return v
}

// Money formats an amount with exactly two decimals and a dot separator.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
