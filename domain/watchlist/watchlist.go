package watchlist

import (
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
)

type Watch struct {
	AuctionId string        `json:"auctionId" bson:"auctionId"`
	LotNumber int           `json:"lotNumber" bson:"lotNumber"`
	Watcher   domain.UserId `json:"watcher" bson:"watcher"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

func (w *Watch) ToLotId() lot.Id {
	return lot.Id{
		AuctionId: w.AuctionId,
		LotNumber: w.LotNumber,
	}
}

// ToggleState reflects the optimistic toggle lifecycle: the caller flips
// the mark immediately, Committed confirms it, RolledBack means the write
// failed and the previous value stands.
type ToggleState string

const (
	ToggleIdle       ToggleState = "idle"
	TogglePending    ToggleState = "pending"
	ToggleCommitted  ToggleState = "committed"
	ToggleRolledBack ToggleState = "rolled_back"
)

type ToggleResult struct {
	State   ToggleState `json:"state"`
	Watched bool        `json:"watched"`
	Count   int         `json:"count"`
}

type findAllOptions struct {
	Offset    *int32         `bson:"-"`
	Limit     *int32         `bson:"-"`
	AuctionId *string        `bson:"auctionId"`
	LotNumber *int           `bson:"lotNumber"`
	Watcher   *domain.UserId `bson:"watcher"`
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithLot(id lot.Id) FindAllOptions {
	return func(options *findAllOptions) error {
		options.AuctionId = &id.AuctionId
		options.LotNumber = &id.LotNumber
		return nil
	}
}

func WithWatcher(watcher domain.UserId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Watcher = &watcher
		return nil
	}
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Watch, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	Create(c ctx.Ctx, value Watch) error
	Delete(c ctx.Ctx, opts ...FindAllOptions) error
}

type UseCase interface {
	// Toggle applies the desired mark and reports whether it committed or
	// rolled back, along with the watcher count to display.
	Toggle(c ctx.Ctx, id lot.Id, watcher domain.UserId, watched bool) (*ToggleResult, error)
	IsWatched(c ctx.Ctx, id lot.Id, watcher domain.UserId) (bool, error)
	Count(c ctx.Ctx, id lot.Id) (int, error)
	ListByWatcher(c ctx.Ctx, watcher domain.UserId) ([]*Watch, error)
}
