package announcement

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Announcement is a storewide banner. The active set comes from config,
// per-user dismissals live behind a key value store.
type Announcement struct {
	Id       string    `json:"id" mapstructure:"id"`
	Title    string    `json:"title" mapstructure:"title"`
	Body     string    `json:"body" mapstructure:"body"`
	StartsAt time.Time `json:"startsAt" mapstructure:"starts_at"`
	EndsAt   time.Time `json:"endsAt" mapstructure:"ends_at"`
}

// ActiveAt reports whether the announcement should show at now. A zero
// EndsAt never expires.
func (a *Announcement) ActiveAt(now time.Time) bool {
	if now.Before(a.StartsAt) {
		return false
	}
	return a.EndsAt.IsZero() || now.Before(a.EndsAt)
}

type UseCase interface {
	// Active returns announcements currently running, minus the ones the
	// user already dismissed.
	Active(c ctx.Ctx, user domain.UserId) ([]*Announcement, error)
	Dismiss(c ctx.Ctx, user domain.UserId, id string) error
}
