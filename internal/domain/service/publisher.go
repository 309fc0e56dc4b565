package service

import (
	"context"
	"fmt"

	"github.com/discountcoupon/coupon-channel-bot/internal/domain"
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/contract"
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type publisherService struct {
	catalog  []entity.Coupon
	position int
	store    contract.PositionStore
	fetcher  contract.ImageFetcher
	sender   contract.PhotoSender
	channel  string
	log      zerolog.Logger
}

func newPublisher(catalog []entity.Coupon, store contract.PositionStore, fetcher contract.ImageFetcher, sender contract.PhotoSender, channel string, log zerolog.Logger) *publisherService {
	position := store.Load()
	if len(catalog) > 0 {
		// The catalog may have shrunk since the position was persisted.
		position = position % len(catalog)
	}

	return &publisherService{
		catalog:  catalog,
		position: position,
		store:    store,
		fetcher:  fetcher,
		sender:   sender,
		channel:  channel,
		log:      log.With().Str("component", "publisher").Logger(),
	}
}

// Publish runs one publishing cycle: select the coupon at the current
// position, download its image, post it with the rendered caption, then
// advance and persist the position.
//
// An image download failure aborts the cycle without advancing, so the same
// coupon is retried on the next tick. A delivery failure still advances, so a
// bad coupon cannot block the rotation forever.
func (s *publisherService) Publish(ctx context.Context) {
	s.log.Info().Int("position", s.position).Msg("starting publish cycle")

	if len(s.catalog) == 0 {
		s.log.Warn().Msg("no coupons to publish")
		return
	}

	coupon := s.catalog[s.position]

	photo, err := s.fetcher.Fetch(ctx, coupon.Image)
	if err != nil {
		s.log.Error().Err(err).Str("image", coupon.Image).Msg("failed to download coupon image, will retry next tick")
		return
	}

	if err := s.sender.SendPhoto(s.channel, photo, renderCaption(coupon)); err != nil {
		s.log.Error().Err(err).Str("channel", s.channel).Msg("failed to send coupon to channel")
	} else {
		s.log.Info().Int("coupon", s.position+1).Msg("coupon published")
	}

	s.position = (s.position + 1) % len(s.catalog)
	if err := s.store.Save(s.position); err != nil {
		s.log.Error().Err(err).Msg("failed to persist position")
	}
}

func renderCaption(c entity.Coupon) string {
	return fmt.Sprintf(domain.CaptionTemplate, c.Title, c.Description, c.Code, c.Countries, c.Note, c.Link)
}
