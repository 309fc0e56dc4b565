package service

import (
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/contract"
	"github.com/discountcoupon/coupon-channel-bot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type Instance struct {
	Publisher *publisherService
}

func NewInstance(catalog []entity.Coupon, store contract.PositionStore, fetcher contract.ImageFetcher, sender contract.PhotoSender, channel string, log zerolog.Logger) *Instance {
	return &Instance{
		Publisher: newPublisher(catalog, store, fetcher, sender, channel, log),
	}
}
