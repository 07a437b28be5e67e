package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"costela-bot/internal/order"
)

// storefrontKeyboard lays out the staging selectors, the cart lines, the
// fulfillment toggle and the finalize button.
func (b *Bot) storefrontKeyboard(sess *order.Session) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, p := range b.catalog.All() {
		pending := sess.Cart.PendingQuantity(p.ID)
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("➖", stageData(p.ID, -1)),
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s: %d", p.Name, pending), dataNoop),
				tgbotapi.NewInlineKeyboardButtonData("➕", stageData(p.ID, 1)),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🛒 Adicionar "+p.Name, addData(p.ID)),
			),
		)
	}

	for _, item := range sess.Cart.Items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖", itemData(item.ProductID, -1)),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%dx %s", item.Quantity, item.Name), dataNoop),
			tgbotapi.NewInlineKeyboardButtonData("➕", itemData(item.ProductID, 1)),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(modeButton(sess.Mode, order.Pickup, "🏠 Retirada"), modeData(string(order.Pickup))),
			tgbotapi.NewInlineKeyboardButtonData(modeButton(sess.Mode, order.Delivery, "🛵 Delivery"), modeData(string(order.Delivery))),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Finalizar pedido", dataCheckoutOpen),
		),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func modeButton(current, mode order.FulfillmentMode, label string) string {
	if current == mode {
		return "● " + label
	}
	return label
}

func reviewKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📲 Enviar pedido", dataCheckoutSubmit),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancelar", dataCheckoutCancel),
		),
	)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancelar pedido", dataCheckoutCancel),
		),
	)
}

func contactRequestKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("📱 Enviar contato"),
		),
	)
	kb.OneTimeKeyboard = true
	kb.ResizeKeyboard = true
	return kb
}

func whatsappKeyboard(link string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Enviar pelo WhatsApp", link),
		),
	)
}
