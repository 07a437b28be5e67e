package bot

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"costela-bot/internal/address"
	"costela-bot/internal/catalog"
	"costela-bot/internal/order"
	"costela-bot/internal/storage"
)

// Messenger is the part of *tgbotapi.BotAPI the bot talks through.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// AddressLookup resolves a typed postal code; *address.Service is the production one.
type AddressLookup interface {
	Lookup(ctx context.Context, raw string) (address.Result, error)
}

type Recorder interface {
	OrderSubmitted(mode string)
	CheckoutRejected(reason string)
	CartUpdated(action string)
}

type Settings struct {
	Shop         order.Shop
	AdminChatIDs []int64
}

type Bot struct {
	api      Messenger
	logger   *zap.Logger
	sessions storage.SessionStore
	catalog  *catalog.Catalog
	lookup   AddressLookup
	metrics  Recorder
	settings Settings

	// mu serializes every session change: updates and lookup answers.
	mu       sync.Mutex
	lookups  sync.WaitGroup
	commands map[string]func(context.Context, int64)
}

func New(
	api Messenger,
	sessions storage.SessionStore,
	cat *catalog.Catalog,
	lookup AddressLookup,
	metrics Recorder,
	settings Settings,
	logger *zap.Logger,
) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}

	b := &Bot{
		api:      api,
		logger:   logger,
		sessions: sessions,
		catalog:  cat,
		lookup:   lookup,
		metrics:  metrics,
		settings: settings,
	}

	b.registerCommands()
	return b
}

func (b *Bot) registerCommands() {
	b.commands = map[string]func(context.Context, int64){
		"start":    b.handleStart,
		"cardapio": b.handleStorefront,
		"carrinho": b.handleStorefront,
		"cancelar": b.handleCancelCommand,
		"cep":      b.handleCEPCommand,
		"help":     b.handleHelp,
		"ajuda":    b.handleHelp,
	}
}

// Start processes updates until ctx is done or the channel closes, then waits
// for outstanding postal code lookups.
func (b *Bot) Start(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	b.logger.Info("Starting bot")
	defer b.Wait()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update, ok := <-updates:
			if !ok {
				b.logger.Info("Updates channel closed")
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single Telegram update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case update.Message != nil:
		b.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.processCallback(ctx, update.CallbackQuery)
	}
}

// Wait blocks until every postal code lookup started so far has been applied.
func (b *Bot) Wait() {
	b.lookups.Wait()
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command())
		return
	}

	if msg.Contact != nil {
		b.handleContact(ctx, chatID, msg.Contact.PhoneNumber)
		return
	}

	b.handleText(ctx, chatID, strings.TrimSpace(msg.Text))
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		b.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	b.logger.Debug("Processing callback",
		zap.Int64("chat_id", chatID),
		zap.String("data", callback.Data))

	action, err := parseAction(callback.Data)
	if err != nil {
		b.logger.Warn("Unknown callback data",
			zap.Int64("chat_id", chatID),
			zap.String("data", callback.Data),
			zap.Error(err))
		b.answerCallback(callback.ID, "")
		return
	}

	switch action.kind {
	case actionNoop:
		b.answerCallback(callback.ID, "")
	case actionStage, actionAdd, actionItem, actionMode:
		b.handleCartAction(ctx, callback, action)
	case actionCheckoutOpen:
		b.handleCheckoutOpen(ctx, callback)
	case actionCheckoutCancel:
		b.handleCheckoutCancel(ctx, callback)
	case actionCheckoutSubmit:
		b.handleCheckoutSubmit(ctx, callback)
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) {
	if handler, exists := b.commands[command]; exists {
		handler(ctx, chatID)
		return
	}
	b.sendError(chatID, msgUnknownCommand)
}

func (b *Bot) loadSession(ctx context.Context, chatID int64) (*order.Session, bool) {
	sess, err := b.sessions.Load(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to load session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, msgInternalError)
		return nil, false
	}
	return sess, true
}

func (b *Bot) saveSession(ctx context.Context, chatID int64, sess *order.Session) bool {
	if err := b.sessions.Save(ctx, chatID, sess); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, msgInternalError)
		return false
	}
	return true
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) bool {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
		return false
	}
	return true
}

func (b *Bot) sendText(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}

func (b *Bot) answerCallback(id, text string) {
	b.answer(tgbotapi.NewCallback(id, text))
}

func (b *Bot) alertCallback(id, text string) {
	b.answer(tgbotapi.NewCallbackWithAlert(id, text))
}

func (b *Bot) answer(cfg tgbotapi.CallbackConfig) {
	if _, err := b.api.Request(cfg); err != nil {
		b.logger.Warn("Failed to answer callback",
			zap.String("callback_id", cfg.CallbackQueryID),
			zap.Error(err))
	}
}

type nopRecorder struct{}

func (nopRecorder) OrderSubmitted(string)   {}
func (nopRecorder) CheckoutRejected(string) {}
func (nopRecorder) CartUpdated(string)      {}
