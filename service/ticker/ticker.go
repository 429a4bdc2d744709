package ticker

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
)

// Service broadcasts a shared tick so every countdown in the process
// rides one timer instead of owning its own.
type Service interface {
	// Subscribe registers a listener. The returned channel receives ticks
	// until the returned cancel func is called or c is done. Cancel is
	// idempotent and closes the channel.
	Subscribe(c ctx.Ctx) (<-chan time.Time, func())

	// Close stops the underlying timer and closes all subscriber channels.
	Close()
}
