package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// NewAPI authorizes against Telegram, retrying with exponential backoff until
// maxElapsed has passed.
func NewAPI(ctx context.Context, token string, debug bool, maxElapsed time.Duration, logger *zap.Logger) (*tgbotapi.BotAPI, error) {
	var api *tgbotapi.BotAPI

	operation := func() error {
		var err error
		api, err = tgbotapi.NewBotAPI(token)
		return err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = maxElapsed

	err := backoff.RetryNotify(operation, backoff.WithContext(expBackoff, ctx),
		func(err error, d time.Duration) {
			logger.Warn("Telegram authorization failed, retrying",
				zap.Duration("retry_in", d),
				zap.Error(err))
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = debug
	logger.Info("Bot authorized", zap.String("username", api.Self.UserName))
	return api, nil
}
