package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"costela-bot/internal/order"
)

func (b *Bot) sendStorefront(chatID int64, sess *order.Session) {
	msg := tgbotapi.NewMessage(chatID, b.renderStorefront(sess))
	msg.ReplyMarkup = b.storefrontKeyboard(sess)
	b.sendMessage(msg)
}

// refreshStorefront redraws the storefront message the callback came from.
func (b *Bot) refreshStorefront(chatID int64, messageID int, sess *order.Session) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, b.renderStorefront(sess), b.storefrontKeyboard(sess))
	if _, err := b.api.Send(edit); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		b.logger.Error("Failed to refresh storefront",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err))
	}
}

// handleCartAction applies a staging, cart line or mode button and redraws
// the storefront in place.
func (b *Bot) handleCartAction(ctx context.Context, callback *tgbotapi.CallbackQuery, act action) {
	chatID := callback.Message.Chat.ID

	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		b.answerCallback(callback.ID, "")
		return
	}

	var (
		changed bool
		label   string
		notice  string
	)

	switch act.kind {
	case actionStage:
		before := sess.Cart.PendingQuantity(act.productID)
		if _, exists := b.catalog.ByID(act.productID); !exists {
			b.alertCallback(callback.ID, userMessage(order.ErrUnknownProduct))
			return
		}
		changed = sess.Cart.SetPendingQuantity(act.productID, act.delta) != before
		label = "stage"

	case actionAdd:
		added, err := sess.AddToCart(b.catalog, act.productID)
		if err != nil {
			b.logger.Warn("Add to cart rejected",
				zap.Int64("chat_id", chatID),
				zap.String("product_id", act.productID),
				zap.Error(err))
			b.alertCallback(callback.ID, userMessage(err))
			return
		}
		if !added {
			notice = "Escolha a quantidade com ➕ antes de adicionar."
		}
		changed = added
		label = "add"

	case actionItem:
		changed = sess.Cart.AdjustLineItem(act.productID, act.delta)
		label = "increment"
		if act.delta < 0 {
			label = "decrement"
		}

	case actionMode:
		mode := order.FulfillmentMode(act.mode)
		if err := sess.SetMode(mode); err != nil {
			b.logger.Warn("Invalid fulfillment mode",
				zap.Int64("chat_id", chatID),
				zap.String("mode", act.mode))
			b.answerCallback(callback.ID, "")
			return
		}
		changed = true
		label = "mode"
	}

	if !changed {
		b.answerCallback(callback.ID, notice)
		return
	}

	if !b.saveSession(ctx, chatID, sess) {
		b.answerCallback(callback.ID, "")
		return
	}

	b.metrics.CartUpdated(label)
	b.answerCallback(callback.ID, notice)
	b.refreshStorefront(chatID, callback.Message.MessageID, sess)
}
