package usecase

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/watchlist"
)

type WatchlistUseCaseCfg struct {
	WatchlistRepo watchlist.Repo
}

type impl struct {
	watchlistRepo watchlist.Repo
}

func New(cfg *WatchlistUseCaseCfg) watchlist.UseCase {
	return &impl{
		watchlistRepo: cfg.WatchlistRepo,
	}
}

// Toggle is written for optimistic callers: the client flips the mark
// before asking, so a failed write reports RolledBack with the value that
// actually stands instead of returning an error.
func (im *impl) Toggle(c ctx.Ctx, id lot.Id, watcher domain.UserId, watched bool) (*watchlist.ToggleResult, error) {
	if watcher.IsEmpty() {
		return nil, domain.ErrAuthRequired
	}

	var err error
	if watched {
		err = im.watch(c, id, watcher)
	} else {
		err = im.unwatch(c, id, watcher)
	}

	res := &watchlist.ToggleResult{
		State:   watchlist.ToggleCommitted,
		Watched: watched,
	}
	if err != nil {
		c.WithField("err", err).WithField("id", id).Error("toggle write failed")
		res.State = watchlist.ToggleRolledBack
		res.Watched = !watched
	}

	count, cerr := im.Count(c, id)
	if cerr != nil {
		return nil, cerr
	}
	res.Count = count

	return res, nil
}

func (im *impl) watch(c ctx.Ctx, id lot.Id, watcher domain.UserId) error {
	// a second watch of the same lot is a no-op, not an error
	if watched, err := im.IsWatched(c, id, watcher); err != nil {
		return err
	} else if watched {
		return nil
	}

	return im.watchlistRepo.Create(c, watchlist.Watch{
		AuctionId: id.AuctionId,
		LotNumber: id.LotNumber,
		Watcher:   watcher,
		CreatedAt: time.Now(),
	})
}

func (im *impl) unwatch(c ctx.Ctx, id lot.Id, watcher domain.UserId) error {
	err := im.watchlistRepo.Delete(c, watchlist.WithLot(id), watchlist.WithWatcher(watcher))
	if err == domain.ErrNotFound {
		return nil
	}
	return err
}

func (im *impl) IsWatched(c ctx.Ctx, id lot.Id, watcher domain.UserId) (bool, error) {
	count, err := im.watchlistRepo.Count(c, watchlist.WithLot(id), watchlist.WithWatcher(watcher))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (im *impl) Count(c ctx.Ctx, id lot.Id) (int, error) {
	return im.watchlistRepo.Count(c, watchlist.WithLot(id))
}

func (im *impl) ListByWatcher(c ctx.Ctx, watcher domain.UserId) ([]*watchlist.Watch, error) {
	return im.watchlistRepo.FindAll(c, watchlist.WithWatcher(watcher))
}
