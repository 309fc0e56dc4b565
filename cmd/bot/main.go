package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/discountcoupon/coupon-channel-bot/internal/catalog"
	"github.com/discountcoupon/coupon-channel-bot/internal/config"
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/service"
	"github.com/discountcoupon/coupon-channel-bot/internal/handlers"
	"github.com/discountcoupon/coupon-channel-bot/internal/imagefetch"
	"github.com/discountcoupon/coupon-channel-bot/internal/scheduler"
	"github.com/discountcoupon/coupon-channel-bot/internal/state"
	"github.com/discountcoupon/coupon-channel-bot/internal/telegram"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting coupon channel bot")

	coupons, err := catalog.NewXLSXLoader(cfg.CouponsFile, logger).Load()
	if err != nil {
		return fmt.Errorf("failed to load coupon catalog: %w", err)
	}

	store := state.New(cfg.StateFile, logger)

	sender, err := telegram.New(cfg.BotToken, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize telegram sender: %w", err)
	}

	services := service.NewInstance(coupons, store, imagefetch.New(), sender, cfg.Channel, logger)

	sched, err := scheduler.New(cfg.PublishCron, cfg.Timezone, services.Publisher, logger)
	if err != nil {
		return fmt.Errorf("failed to set up scheduler: %w", err)
	}

	// First post fires immediately so a broken deploy is visible without
	// waiting for the next tick.
	services.Publisher.Publish(context.Background())

	sched.Start()
	defer sched.Stop()

	logger.Info().Str("port", cfg.Port).Str("cron", cfg.PublishCron).Str("timezone", cfg.Timezone).Msg("liveness server starting")
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, handlers.NewRouter()); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
