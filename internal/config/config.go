package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	TelegramToken  string        `env:"TELEGRAM_TOKEN,required,notEmpty"`
	BotDebug       bool          `env:"BOT_DEBUG" envDefault:"false"`
	BusinessName   string        `env:"BUSINESS_NAME" envDefault:"Costela do Titi"`
	WhatsAppNumber string        `env:"WHATSAPP_NUMBER" envDefault:"5511999999999"`
	AdminChatIDs   []int64       `env:"ADMIN_CHAT_IDS" envSeparator:","`
	ViaCEPBaseURL  string        `env:"VIACEP_BASE_URL" envDefault:"https://viacep.com.br/ws"`
	LookupTimeout  time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"10s"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	digits := strings.Trim(c.WhatsAppNumber, "0123456789")
	if c.WhatsAppNumber == "" || digits != "" {
		return fmt.Errorf("WHATSAPP_NUMBER must contain digits only, got %q", c.WhatsAppNumber)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// UseRedis reports whether chat sessions should live in Redis instead of process memory.
func (c *Config) UseRedis() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
