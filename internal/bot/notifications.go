package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"costela-bot/internal/order"
)

// orderSender hands the WhatsApp link to the customer. Admin chats get a copy
// of the order; their failures are logged only.
func (b *Bot) orderSender(chatID int64, username string) order.Sender {
	return order.SenderFunc(func(ctx context.Context, placed order.Placed) error {
		msg := tgbotapi.NewMessage(chatID, msgOrderReady)
		msg.ReplyMarkup = whatsappKeyboard(placed.Link)
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send order link: %w", err)
		}

		b.NotifyAdmins(ctx, placed, username)
		return nil
	})
}

func (b *Bot) NotifyAdmins(ctx context.Context, placed order.Placed, username string) {
	if len(b.settings.AdminChatIDs) == 0 {
		b.logger.Debug("Admin notifications disabled - no admin chat configured")
		return
	}

	text := renderAdminNotification(placed, username)
	for _, adminID := range b.settings.AdminChatIDs {
		if ctx.Err() != nil {
			return
		}
		if _, err := b.api.Send(tgbotapi.NewMessage(adminID, text)); err != nil {
			b.logger.Error("Failed to notify admin",
				zap.Int64("admin_chat_id", adminID),
				zap.Error(err))
		}
	}
}
