package order

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const pickupInstructions = "*Instruções para retirada:*\n" +
	"Seu pedido ficará pronto em aproximadamente 15-20 minutos.\n" +
	"Avisaremos pelo telefone quando estiver pronto para retirada!\n\n"

// ComposeMessage writes the order text sent to the shop. Items follow cart order.
func ComposeMessage(business string, cart Cart, mode FulfillmentMode, customer CustomerInfo, fee decimal.Decimal) string {
	var b strings.Builder

	b.WriteString("*NOVO PEDIDO - " + business + "*\n\n")
	b.WriteString("*Cliente:* " + customer.Name + "\n")
	b.WriteString("*Telefone:* " + customer.Phone + "\n")
	b.WriteString("*Tipo:* " + mode.Label() + "\n\n")

	if mode == Delivery {
		b.WriteString("*Endereço:* " + customer.Street + ", " + customer.Number)
		if customer.Complement != "" {
			b.WriteString(", " + customer.Complement)
		}
		b.WriteString(" - " + customer.Neighborhood + ", " + customer.City + "-" + customer.State + "\n\n")
	}

	b.WriteString("*Itens do Pedido:*\n")
	for _, item := range cart.Items {
		b.WriteString("➡️ " + strconv.Itoa(item.Quantity) + "x " + item.Name + " - R$ " + Money(item.Total()) + "\n")
	}

	if ChargesFee(cart, mode) {
		b.WriteString("📦 *Taxa de entrega:* R$ " + Money(fee) + "\n")
	}

	b.WriteString("\n*Total: R$ " + Money(ComputeTotal(cart, mode, fee)) + "*\n\n")

	if customer.Notes != "" {
		b.WriteString("*Observações:* " + customer.Notes + "\n\n")
	}

	if mode != Delivery {
		b.WriteString(pickupInstructions)
	}

	b.WriteString("*Pedido realizado via site*")
	return b.String()
}

// DeepLink builds the wa.me link that opens a chat with number prefilled with text.
func DeepLink(number, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + number + "?text=" + escaped
}
