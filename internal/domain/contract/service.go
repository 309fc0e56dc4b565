package contract

import "context"

// Publisher runs one publishing cycle. The scheduler triggers it once per
// tick; it is also invoked once directly at startup.
type Publisher interface {
	Publish(ctx context.Context)
}
