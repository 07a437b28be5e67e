package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Costela do Titi", cfg.BusinessName)
	assert.Equal(t, "5511999999999", cfg.WhatsAppNumber)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
	assert.False(t, cfg.UseRedis())
}

func TestLoadAdminChatIDs(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ADMIN_CHAT_IDS", "10,20")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20}, cfg.AdminChatIDs)
	assert.True(t, cfg.UseRedis())
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsFormattedWhatsAppNumber(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("WHATSAPP_NUMBER", "+55 11 99999-9999")

	_, err := Load()
	assert.Error(t, err)
}
