package bot

import (
	"fmt"
	"strings"

	"costela-bot/internal/order"
)

const emptyCartText = "Seu carrinho está vazio"

// renderStorefront is the text of the storefront message: menu, cart and total.
func (b *Bot) renderStorefront(sess *order.Session) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🥩 %s\n\n", b.settings.Shop.Name)
	sb.WriteString("Cardápio:\n")
	for _, p := range b.catalog.All() {
		fmt.Fprintf(&sb, "• %s - R$ %s\n", p.Name, order.Money(p.UnitPrice))
	}

	sb.WriteString("\n🛒 Carrinho:\n")
	sb.WriteString(renderCart(sess.View(b.settings.Shop.DeliveryFee)))

	fmt.Fprintf(&sb, "\nModo: %s", sess.Mode.Label())
	if sess.Checkout.IsOpen() {
		sb.WriteString("\n\n📝 Pedido em andamento: responda às perguntas abaixo.")
	}
	return sb.String()
}

func renderCart(v order.View) string {
	if v.Empty {
		return emptyCartText + "\n"
	}

	var sb strings.Builder
	for _, row := range v.Rows {
		fmt.Fprintf(&sb, "%dx %s (R$ %s) = R$ %s\n", row.Quantity, row.Name, row.UnitPrice, row.Total)
	}
	if v.ShowDeliveryFee {
		fmt.Fprintf(&sb, "Taxa de entrega: R$ %s\n", v.DeliveryFee)
	}
	fmt.Fprintf(&sb, "Total: R$ %s\n", v.Total)
	return sb.String()
}

// renderCheckoutIntro opens the form for the section chosen.
func renderCheckoutIntro(section order.FulfillmentMode) string {
	if section == order.Delivery {
		return "📝 Vamos finalizar seu pedido para delivery.\nVou pedir seus dados de contato e o endereço de entrega."
	}
	return "📝 Vamos finalizar seu pedido para retirada.\nVou pedir seus dados de contato."
}

// renderReview previews the exact message that will be sent. The form keeps
// the mode it was opened with, so a later toggle is pointed out.
func (b *Bot) renderReview(sess *order.Session) string {
	shop := b.settings.Shop
	section := sess.Checkout.Section
	message := order.ComposeMessage(shop.Name, sess.Cart, section, sess.Checkout.Customer, shop.DeliveryFee)

	header := fmt.Sprintf("Confira seu pedido (%s):\n", section.Label())
	if sess.Mode != section {
		header += fmt.Sprintf("O pedido será enviado como %s. Para %s, cancele e finalize novamente.\n",
			section.Label(), sess.Mode.Label())
	}
	return header + "\n" + message
}

func renderAddressFound(c order.CustomerInfo) string {
	return fmt.Sprintf("📍 Endereço encontrado: %s, %s, %s/%s", c.Street, c.Neighborhood, c.City, c.State)
}

func renderAdminNotification(placed order.Placed, username string) string {
	header := fmt.Sprintf("📦 Novo pedido (%s) - Total R$ %s", placed.Mode.Label(), order.Money(placed.Total))
	if username != "" {
		header += "\nTG: @" + username
	}
	return header + "\n\n" + placed.Message
}
