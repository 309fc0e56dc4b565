// Package telegram delivers coupon posts to the Telegram channel.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type Sender struct {
	bot *tgbotapi.BotAPI
	log zerolog.Logger
}

// New authenticates against the Telegram Bot API with the given token.
func New(token string, log zerolog.Logger) (*Sender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	logger := log.With().Str("component", "telegram-sender").Logger()
	logger.Info().Str("bot", bot.Self.UserName).Msg("telegram bot initialized")

	return &Sender{bot: bot, log: logger}, nil
}

// SendPhoto posts the photo bytes with the caption to the channel, addressed
// by its public username (for example "@discountcoupononline").
func (s *Sender) SendPhoto(channel string, photo []byte, caption string) error {
	msg := tgbotapi.NewPhotoToChannel(channel, tgbotapi.FileBytes{
		Name:  "coupon.jpg",
		Bytes: photo,
	})
	msg.Caption = caption

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send photo to %s: %w", channel, err)
	}

	return nil
}
