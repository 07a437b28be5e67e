package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"costela-bot/internal/address"
	"costela-bot/internal/bot"
	"costela-bot/internal/catalog"
	"costela-bot/internal/config"
	"costela-bot/internal/httpserver"
	"costela-bot/internal/metrics"
	"costela-bot/internal/order"
	"costela-bot/internal/storage"
	"costela-bot/internal/storage/memory"
	redisstore "costela-bot/internal/storage/redis"
	"costela-bot/pkg/logger"
	"costela-bot/pkg/redis"
	"costela-bot/pkg/viacep"
)

// ENTRY POINT

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.BotDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	shopMetrics := metrics.NewShop(registry)

	health := map[string]httpserver.Pinger{}

	var sessions storage.SessionStore
	if cfg.UseRedis() {
		redisClient, err := redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, zapLogger)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		sessions = redisstore.New(redisClient, cfg.SessionTTL)
		health["redis"] = redisClient
	} else {
		zapLogger.Warn("REDIS_ADDR not set, keeping sessions in memory")
		sessions = memory.New(cfg.SessionTTL)
	}

	cat := catalog.Default()

	lookup := address.NewService(
		viacep.NewClient(
			viacep.WithBaseURL(cfg.ViaCEPBaseURL),
			viacep.WithTimeout(cfg.LookupTimeout),
		),
		zapLogger,
		shopMetrics,
	)

	api, err := bot.NewAPI(ctx, cfg.TelegramToken, cfg.BotDebug, 2*time.Minute, zapLogger)
	if err != nil {
		return err
	}

	tgBot := bot.New(api, sessions, cat, lookup, shopMetrics, bot.Settings{
		Shop: order.Shop{
			Name:           cfg.BusinessName,
			WhatsAppNumber: cfg.WhatsAppNumber,
			DeliveryFee:    catalog.DeliveryFee,
		},
		AdminChatIDs: cfg.AdminChatIDs,
	}, zapLogger)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	opsServer := httpserver.New(cfg.HTTPAddr, httpserver.NewRouter(cat, registry, health), zapLogger)
	serverErr := make(chan error, 1)
	go func() {
		err := opsServer.Run(ctx)
		if err != nil {
			stop()
		}
		serverErr <- err
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	botErr := tgBot.Start(ctx, updates)
	api.StopReceivingUpdates()
	stop()

	if err := <-serverErr; err != nil {
		return fmt.Errorf("ops server: %w", err)
	}
	return botErr
}
