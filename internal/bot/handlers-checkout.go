package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"costela-bot/internal/address"
	"costela-bot/internal/mask"
	"costela-bot/internal/order"
)

func (b *Bot) handleCheckoutOpen(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		b.answerCallback(callback.ID, "")
		return
	}

	if err := sess.OpenCheckout(); err != nil {
		b.metrics.CheckoutRejected(rejectionReason(err))
		b.alertCallback(callback.ID, userMessage(err))
		return
	}

	if !b.saveSession(ctx, chatID, sess) {
		b.answerCallback(callback.ID, "")
		return
	}

	b.logger.Info("Checkout opened",
		zap.Int64("chat_id", chatID),
		zap.String("section", string(sess.Checkout.Section)))

	b.answerCallback(callback.ID, "")
	b.refreshStorefront(chatID, callback.Message.MessageID, sess)
	b.sendText(chatID, renderCheckoutIntro(sess.Checkout.Section))
	b.promptField(chatID, sess)
}

func (b *Bot) handleCheckoutCancel(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		b.answerCallback(callback.ID, "")
		return
	}
	if !sess.Checkout.IsOpen() {
		b.answerCallback(callback.ID, "")
		return
	}

	sess.CancelCheckout()
	if !b.saveSession(ctx, chatID, sess) {
		b.answerCallback(callback.ID, "")
		return
	}

	b.logger.Info("Checkout canceled", zap.Int64("chat_id", chatID))
	b.answerCallback(callback.ID, "")
	b.sendText(chatID, msgCheckoutCanceled)
	b.sendStorefront(chatID, sess)
}

func (b *Bot) handleCheckoutSubmit(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID

	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		b.answerCallback(callback.ID, "")
		return
	}

	var username string
	if callback.From != nil {
		username = callback.From.UserName
	}

	placed, err := sess.SubmitCheckout(ctx, b.settings.Shop, b.orderSender(chatID, username))
	switch {
	case errors.Is(err, order.ErrMissingContact), errors.Is(err, order.ErrIncompleteAddress):
		b.metrics.CheckoutRejected(rejectionReason(err))
		b.alertCallback(callback.ID, userMessage(err))
		sess.Checkout.FocusFirstMissing()
		if b.saveSession(ctx, chatID, sess) {
			b.promptField(chatID, sess)
		}
		return

	case errors.Is(err, order.ErrCheckoutClosed), errors.Is(err, order.ErrEmptyCart):
		b.metrics.CheckoutRejected(rejectionReason(err))
		b.alertCallback(callback.ID, userMessage(err))
		return

	case err != nil:
		b.logger.Error("Failed to send order",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.metrics.CheckoutRejected(rejectionReason(err))
		b.alertCallback(callback.ID, msgSendFailed)
		return
	}

	if !b.saveSession(ctx, chatID, sess) {
		b.answerCallback(callback.ID, "")
		return
	}

	b.logger.Info("Order submitted",
		zap.Int64("chat_id", chatID),
		zap.String("mode", string(placed.Mode)),
		zap.String("total", order.Money(placed.Total)))
	b.metrics.OrderSubmitted(string(placed.Mode))

	b.answerCallback(callback.ID, "")
	b.sendStorefront(chatID, sess)
}

// handleText feeds free text into the open checkout form.
func (b *Bot) handleText(ctx context.Context, chatID int64, text string) {
	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		return
	}

	if !sess.Checkout.IsOpen() {
		b.sendText(chatID, msgUnknownInput)
		return
	}

	switch sess.Checkout.Focus {
	case order.FieldReview:
		b.sendText(chatID, msgUseReviewButtons)
		return
	case order.FieldPostalCode:
		if text != order.SkipValue {
			b.startLookup(ctx, chatID, sess, text)
			return
		}
	case order.FieldStreet:
		if isPostalCode(text) {
			b.startLookup(ctx, chatID, sess, text)
			return
		}
	}

	b.fillField(ctx, chatID, sess, text)
}

// isPostalCode reports whether text is a bare CEP, masked or not. A street
// name never is.
func isPostalCode(text string) bool {
	if strings.Trim(text, "0123456789-. ") != "" {
		return false
	}
	_, err := address.Clean(text)
	return err == nil
}

// handleCEPCommand moves the form back to the postal code so the address can
// be looked up again.
func (b *Bot) handleCEPCommand(ctx context.Context, chatID int64) {
	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		return
	}

	if !sess.Checkout.IsOpen() || sess.Checkout.Section != order.Delivery {
		b.sendText(chatID, msgNoAddressForm)
		return
	}

	sess.Checkout.Jump(order.FieldPostalCode)
	if !b.saveSession(ctx, chatID, sess) {
		return
	}
	b.promptField(chatID, sess)
}

// handleContact accepts a shared Telegram contact as the phone number.
func (b *Bot) handleContact(ctx context.Context, chatID int64, phone string) {
	sess, ok := b.loadSession(ctx, chatID)
	if !ok {
		return
	}

	if !sess.Checkout.IsOpen() || sess.Checkout.Focus != order.FieldPhone {
		b.sendText(chatID, msgUnknownInput)
		return
	}

	b.fillField(ctx, chatID, sess, mask.ContactPhone(phone))
}

func (b *Bot) fillField(ctx context.Context, chatID int64, sess *order.Session, value string) {
	field := sess.Checkout.Focus

	if _, err := sess.Checkout.Fill(value); err != nil {
		b.sendError(chatID, userMessage(err))
		return
	}

	if !b.saveSession(ctx, chatID, sess) {
		return
	}

	if field == order.FieldPhone {
		confirm := tgbotapi.NewMessage(chatID, "📱 Telefone: "+sess.Checkout.Customer.Phone)
		confirm.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		b.sendMessage(confirm)
	}

	b.promptField(chatID, sess)
}

// startLookup records the typed postal code and resolves it in the
// background. The chat stays usable while the request is in flight.
func (b *Bot) startLookup(ctx context.Context, chatID int64, sess *order.Session, raw string) {
	cep, err := address.Clean(raw)
	if err != nil {
		b.sendError(chatID, userMessage(err))
		return
	}

	token := sess.Checkout.BeginLookup(cep)
	if !b.saveSession(ctx, chatID, sess) {
		return
	}

	b.sendText(chatID, msgLookupPending)

	b.lookups.Add(1)
	go b.resolveAddress(ctx, chatID, token, cep)
}

func (b *Bot) resolveAddress(ctx context.Context, chatID int64, token uint64, cep string) {
	defer b.lookups.Done()

	result, lookupErr := b.lookup.Lookup(ctx, cep)

	b.mu.Lock()
	defer b.mu.Unlock()

	sess, err := b.sessions.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load session for lookup result",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	if !sess.Checkout.ApplyLookup(token, result.Fill()) {
		b.logger.Debug("Discarding stale lookup result",
			zap.Int64("chat_id", chatID),
			zap.Uint64("token", token))
		return
	}

	if !b.saveSession(ctx, chatID, sess) {
		return
	}

	if lookupErr != nil {
		b.sendError(chatID, userMessage(lookupErr))
	} else {
		b.sendText(chatID, renderAddressFound(sess.Checkout.Customer))
	}
	b.promptField(chatID, sess)
}

// promptField asks for the focused field, or shows the review when every
// field was answered.
func (b *Bot) promptField(chatID int64, sess *order.Session) {
	focus := sess.Checkout.Focus

	if focus == order.FieldReview {
		msg := tgbotapi.NewMessage(chatID, b.renderReview(sess))
		msg.ReplyMarkup = reviewKeyboard()
		b.sendMessage(msg)
		return
	}

	text := fieldPrompts[focus]
	if focus == order.FieldStreet && sess.Checkout.AddressRevealed {
		text = msgManualAddress + "\n" + text
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if focus == order.FieldPhone {
		msg.ReplyMarkup = contactRequestKeyboard()
	} else {
		msg.ReplyMarkup = cancelKeyboard()
	}
	b.sendMessage(msg)
}
