package contract

import "context"

// ImageFetcher downloads the coupon image bytes.
type ImageFetcher interface {
	Fetch(ctx context.Context, imageURL string) ([]byte, error)
}

// PhotoSender posts a photo with a caption to a channel.
// This allows mocking in tests while keeping the real implementation simple.
type PhotoSender interface {
	SendPhoto(channel string, photo []byte, caption string) error
}
