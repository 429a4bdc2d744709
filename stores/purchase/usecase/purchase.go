package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/purchase"
)

type PurchaseUseCaseCfg struct {
	PurchaseRepo purchase.Repo
	LotRepo      lot.Repo
}

type impl struct {
	purchaseRepo purchase.Repo
	lotRepo      lot.Repo
}

func New(cfg *PurchaseUseCaseCfg) purchase.UseCase {
	return &impl{
		purchaseRepo: cfg.PurchaseRepo,
		lotRepo:      cfg.LotRepo,
	}
}

func (im *impl) BuyNow(c ctx.Ctx, id lot.Id, buyer domain.UserId, qty int) (*purchase.BuyNowResult, error) {
	if buyer.IsEmpty() {
		return nil, domain.ErrAuthRequired
	}

	if qty <= 0 {
		return nil, domain.ErrBadParamInput
	}

	now := time.Now()

	cur, err := im.lotRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if !cur.BuyNowEnabled || cur.BuyNowPrice <= 0 {
		return nil, domain.ErrBuyNowDisabled
	}

	if cur.HasEnded(now) {
		return nil, domain.ErrAuctionEnded
	}

	// the reservation is all or nothing, partial fills never happen
	updated, err := im.lotRepo.ReserveQuantity(c, id, qty)
	if err == domain.ErrInsufficientQuantity {
		return &purchase.BuyNowResult{Lot: updated}, err
	} else if err != nil {
		return nil, err
	}

	value := &purchase.Purchase{
		PurchaseId: uuid.New().String(),
		AuctionId:  id.AuctionId,
		LotNumber:  id.LotNumber,
		Buyer:      buyer,
		Quantity:   qty,
		UnitPrice:  updated.BuyNowPrice,
		Status:     purchase.StatusPendingPayment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := im.purchaseRepo.Create(c, value); err != nil {
		c.WithField("err", err).WithField("id", id).Error("purchaseRepo.Create failed")
		// hand the reserved units back, nobody owns them
		if _, rerr := im.lotRepo.ReleaseQuantity(c, id, qty); rerr != nil {
			c.WithField("err", rerr).WithField("id", id).Error("lotRepo.ReleaseQuantity failed")
		}
		return nil, err
	}

	return &purchase.BuyNowResult{
		Purchase: value,
		Lot:      updated,
	}, nil
}

func (im *impl) Confirm(c ctx.Ctx, purchaseId string, caller domain.UserId) error {
	_, err := im.settle(c, purchaseId, caller, purchase.StatusConfirmed)
	return err
}

func (im *impl) Reject(c ctx.Ctx, purchaseId string, caller domain.UserId) error {
	cur, err := im.settle(c, purchaseId, caller, purchase.StatusRejected)
	if err != nil {
		return err
	}

	// the reservation outlives a rejected purchase otherwise
	id := lot.Id{AuctionId: cur.AuctionId, LotNumber: cur.LotNumber}
	if _, err := im.lotRepo.ReleaseQuantity(c, id, cur.Quantity); err != nil {
		c.WithField("err", err).WithField("id", id).Error("lotRepo.ReleaseQuantity failed")
		// put the purchase back to pending so a retried reject can still
		// release the units, otherwise they are held forever
		if _, rerr := im.purchaseRepo.Settle(c, purchaseId, purchase.StatusRejected, purchase.StatusPendingPayment); rerr != nil {
			c.WithField("err", rerr).WithField("purchaseId", purchaseId).Error("purchaseRepo.Settle revert failed")
		}
		return err
	}

	return nil
}

func (im *impl) ListByBuyer(c ctx.Ctx, buyer domain.UserId, offset, limit int32) ([]*purchase.Purchase, error) {
	return im.purchaseRepo.FindAll(c, purchase.WithBuyer(buyer), purchase.WithPagination(offset, limit))
}

// settle moves the caller's pending purchase to a terminal status. The
// transition itself is a guarded update in the repo, so of any number of
// concurrent settles exactly one comes back non stale.
func (im *impl) settle(c ctx.Ctx, purchaseId string, caller domain.UserId, to purchase.Status) (*purchase.Purchase, error) {
	if caller.IsEmpty() {
		return nil, domain.ErrAuthRequired
	}

	cur, err := im.purchaseRepo.FindOne(c, purchaseId)
	if err != nil {
		return nil, err
	}

	// someone else's purchase reads as missing, ids are guessable
	if cur.Buyer != caller {
		return nil, domain.ErrNotFound
	}

	return im.purchaseRepo.Settle(c, purchaseId, purchase.StatusPendingPayment, to)
}
