package bot

import (
	"context"

	"go.uber.org/zap"
)

func (b *Bot) handleStart(ctx context.Context, chatID int64) {
	b.sendText(chatID, "Olá! Bem-vindo à "+b.settings.Shop.Name+". Monte seu pedido abaixo.")
	b.handleStorefront(ctx, chatID)
}

// handleStorefront posts a fresh storefront message for the chat's session.
func (b *Bot) handleStorefront(ctx context.Context, chatID int64) {
	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		return
	}
	b.sendStorefront(chatID, sess)
}

func (b *Bot) handleCancelCommand(ctx context.Context, chatID int64) {
	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		return
	}
	if !sess.Checkout.IsOpen() {
		b.sendText(chatID, "Nenhum pedido em andamento.")
		return
	}

	sess.CancelCheckout()
	if !b.saveSession(ctx, chatID, sess) {
		return
	}

	b.logger.Info("Checkout canceled", zap.Int64("chat_id", chatID))
	b.sendText(chatID, msgCheckoutCanceled)
	b.sendStorefront(chatID, sess)
}

func (b *Bot) handleHelp(_ context.Context, chatID int64) {
	b.sendText(chatID, msgHelp)
}
