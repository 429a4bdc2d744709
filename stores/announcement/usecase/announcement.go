package usecase

import (
	"encoding/json"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/kvstore"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/announcement"
	"github.com/bidhaus/goapi/domain/keys"
)

// dismissalTtl outlives any reasonable announcement run
const dismissalTtl = 90 * 24 * time.Hour

type AnnouncementUseCaseCfg struct {
	// Announcements is the configured banner set, start and end dates
	// included. Rotation is a config deploy, not a database write.
	Announcements []announcement.Announcement
	Store         kvstore.Store
}

type impl struct {
	announcements []announcement.Announcement
	store         kvstore.Store
}

func New(cfg *AnnouncementUseCaseCfg) announcement.UseCase {
	return &impl{
		announcements: cfg.Announcements,
		store:         cfg.Store,
	}
}

func (im *impl) Active(c ctx.Ctx, user domain.UserId) ([]*announcement.Announcement, error) {
	dismissed, err := im.dismissed(c, user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := []*announcement.Announcement{}
	for i := range im.announcements {
		a := im.announcements[i]
		if !a.ActiveAt(now) {
			continue
		}
		if dismissed[a.Id] {
			continue
		}
		res = append(res, &a)
	}

	return res, nil
}

func (im *impl) Dismiss(c ctx.Ctx, user domain.UserId, id string) error {
	if user.IsEmpty() {
		return domain.ErrAuthRequired
	}

	known := false
	for _, a := range im.announcements {
		if a.Id == id {
			known = true
			break
		}
	}
	if !known {
		return domain.ErrNotFound
	}

	dismissed, err := im.dismissed(c, user)
	if err != nil {
		return err
	}
	if dismissed[id] {
		return nil
	}
	dismissed[id] = true

	data, err := json.Marshal(dismissed)
	if err != nil {
		return err
	}

	if err := im.store.Set(c, im.key(user), data, dismissalTtl); err != nil {
		c.WithField("err", err).WithField("user", user).Error("store.Set failed")
		return err
	}

	return nil
}

func (im *impl) dismissed(c ctx.Ctx, user domain.UserId) (map[string]bool, error) {
	res := map[string]bool{}

	if user.IsEmpty() {
		return res, nil
	}

	data, err := im.store.Get(c, im.key(user))
	if err == kvstore.ErrNotFound {
		return res, nil
	} else if err != nil {
		c.WithField("err", err).WithField("user", user).Error("store.Get failed")
		return nil, err
	}

	if err := json.Unmarshal(data, &res); err != nil {
		// a corrupt record only costs the user their dismissals
		c.WithField("err", err).Warn("dismissal record is corrupt, resetting")
		return map[string]bool{}, nil
	}

	return res, nil
}

func (im *impl) key(user domain.UserId) string {
	return keys.RedisKey(keys.PfxDismissals, string(user))
}
