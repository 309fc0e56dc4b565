package config

import (
	"fmt"
	"os"

	"github.com/discountcoupon/coupon-channel-bot/internal/domain"
)

type Config struct {
	BotToken    string
	Channel     string
	CouponsFile string
	StateFile   string
	PublishCron string
	Timezone    string
	Port        string
	Logger      LoggerConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		Channel:     getEnv("CHANNEL", domain.DefaultChannel),
		CouponsFile: getEnv("COUPONS_FILE", "coupons.xlsx"),
		StateFile:   getEnv("STATE_FILE", "state.json"),
		PublishCron: getEnv("PUBLISH_CRON", domain.DefaultPublishCron),
		Timezone:    getEnv("TZ_NAME", domain.DefaultTimezone),
		Port:        getEnv("PORT", "8080"),
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Channel == "" {
		return fmt.Errorf("channel must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
