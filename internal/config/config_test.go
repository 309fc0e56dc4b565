package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingBotTokenIsAnError(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "@discountcoupononline", cfg.Channel)
	assert.Equal(t, "coupons.xlsx", cfg.CouponsFile)
	assert.Equal(t, "state.json", cfg.StateFile)
	assert.Equal(t, "0 * * * *", cfg.PublishCron)
	assert.Equal(t, "Africa/Algiers", cfg.Timezone)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("CHANNEL", "@othertest")
	t.Setenv("COUPONS_FILE", "/data/coupons.xlsx")
	t.Setenv("STATE_FILE", "/data/state.json")
	t.Setenv("PUBLISH_CRON", "* * * * *")
	t.Setenv("TZ_NAME", "Europe/Lisbon")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "@othertest", cfg.Channel)
	assert.Equal(t, "/data/coupons.xlsx", cfg.CouponsFile)
	assert.Equal(t, "/data/state.json", cfg.StateFile)
	assert.Equal(t, "* * * * *", cfg.PublishCron)
	assert.Equal(t, "Europe/Lisbon", cfg.Timezone)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "console", cfg.Logger.Format)
}
