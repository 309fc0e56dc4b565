package contract

import "github.com/discountcoupon/coupon-channel-bot/internal/domain/entity"

// PositionStore owns the persisted rotation position. Load never fails: a
// missing or unreadable state file falls back to position 0.
type PositionStore interface {
	Load() int
	Save(position int) error
}

// CatalogLoader reads the full ordered coupon catalog from its source.
// Row order defines the rotation order.
type CatalogLoader interface {
	Load() ([]entity.Coupon, error)
}
