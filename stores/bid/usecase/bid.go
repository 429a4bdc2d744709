package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	"github.com/bidhaus/goapi/domain/clock"
	"github.com/bidhaus/goapi/domain/lot"
)

type BidUseCaseCfg struct {
	BidRepo bid.Repo
	LotRepo lot.Repo
	// AntiSnipingWindow extends the auction when a bid lands this close to
	// the end. Zero disables extension.
	AntiSnipingWindow time.Duration
}

type impl struct {
	bidRepo           bid.Repo
	lotRepo           lot.Repo
	antiSnipingWindow time.Duration
}

func New(cfg *BidUseCaseCfg) bid.UseCase {
	return &impl{
		bidRepo:           cfg.BidRepo,
		lotRepo:           cfg.LotRepo,
		antiSnipingWindow: cfg.AntiSnipingWindow,
	}
}

func (im *impl) Place(c ctx.Ctx, id lot.Id, bidder domain.UserId, amount domain.Cents) (*bid.PlaceResult, error) {
	if bidder.IsEmpty() {
		return nil, domain.ErrAuthRequired
	}

	if amount <= 0 {
		return nil, domain.ErrBadParamInput
	}

	now := time.Now()

	cur, err := im.lotRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	extended := clock.ShouldExtend(im.antiSnipingWindow, cur.EndDate, now)
	var newEndDate *time.Time
	if extended {
		end := clock.ExtendedEnd(now, im.antiSnipingWindow)
		newEndDate = &end
	}

	// acceptance itself is the authority: the conditional update re-checks
	// price and end date, a concurrent higher bid makes this one lose
	updated, err := im.lotRepo.AcceptBid(c, id, amount, now, newEndDate)
	if err != nil {
		return nil, err
	}

	value := &bid.Bid{
		BidId:     uuid.New().String(),
		AuctionId: id.AuctionId,
		LotNumber: id.LotNumber,
		Bidder:    bidder,
		Amount:    amount,
		Extended:  extended,
		CreatedAt: now,
	}

	if err := im.bidRepo.Create(c, value); err != nil {
		c.WithField("err", err).WithField("id", id).Error("bidRepo.Create failed")
		return nil, err
	}

	return &bid.PlaceResult{
		Bid:      value,
		Lot:      updated,
		Extended: extended,
	}, nil
}

func (im *impl) History(c ctx.Ctx, id lot.Id, offset, limit int32) ([]*bid.Bid, error) {
	return im.bidRepo.FindAll(c, bid.WithLot(id), bid.WithPagination(offset, limit))
}
