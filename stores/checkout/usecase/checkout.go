package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	"github.com/bidhaus/goapi/domain/checkout"
	"github.com/bidhaus/goapi/domain/fee"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/purchase"
)

type CheckoutUseCaseCfg struct {
	Lot      lot.UseCase
	Fee      fee.Calculator
	Bid      bid.UseCase
	Purchase purchase.UseCase
}

type impl struct {
	lot      lot.UseCase
	fee      fee.Calculator
	bid      bid.UseCase
	purchase purchase.UseCase
}

func New(cfg *CheckoutUseCaseCfg) checkout.UseCase {
	return &impl{
		lot:      cfg.Lot,
		fee:      cfg.Fee,
		bid:      cfg.Bid,
		purchase: cfg.Purchase,
	}
}

func (im *impl) Begin(c ctx.Ctx, id lot.Id, buyer domain.UserId, mode checkout.Mode) (*checkout.Session, error) {
	value, err := im.lot.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if mode == checkout.ModeBuyNow && !value.BuyNowOpen(time.Now()) {
		return nil, domain.ErrBuyNowDisabled
	}

	s := &checkout.Session{
		SessionId: uuid.New().String(),
		Buyer:     buyer,
		Mode:      mode,
		State:     checkout.StateDrafting,
		Lot:       value,
	}

	if mode == checkout.ModeBuyNow {
		s.Quantity = 1
	}

	return s, nil
}

func (im *impl) SetAmount(c ctx.Ctx, s *checkout.Session, amount domain.Cents) (<-chan struct{}, error) {
	s.Lock()
	defer s.Unlock()

	switch s.State {
	case checkout.StateSubmitting, checkout.StateSettled:
		return nil, domain.ErrStaleState
	}

	if amount <= 0 {
		return nil, domain.ErrBadParamInput
	}

	// local gate against the cached lot. The repository re-checks on
	// submit, this only saves the buyer a round trip.
	if s.Mode == checkout.ModeBid && amount <= s.Lot.CurrentPrice {
		return nil, domain.ErrBidTooLow
	}

	// supersede whatever pricing is still in flight
	if s.CancelPricing != nil {
		s.CancelPricing()
	}
	s.Generation++
	gen := s.Generation

	pricingCtx, cancel := ctx.WithCancel(c)
	s.CancelPricing = cancel

	s.State = checkout.StatePricingRequested
	s.Amount = amount
	s.Breakdown = nil
	s.Rejection = nil

	done := make(chan struct{})

	go func() {
		defer close(done)

		b, err := im.price(pricingCtx, s.Lot, amount)

		s.Lock()
		defer s.Unlock()

		// a newer amount owns the session now, this result is garbage
		if s.Generation != gen {
			return
		}

		if err != nil {
			s.State = checkout.StateRejected
			s.Rejection = &checkout.Rejection{
				Reason:    checkout.ReasonNetwork,
				Message:   err.Error(),
				Retryable: true,
			}
			return
		}

		s.Breakdown = b
		s.State = checkout.StatePricingReady
	}()

	return done, nil
}

// price computes the buyer cost, falling back to the flagged estimate when
// the authoritative schedule cannot answer.
func (im *impl) price(c ctx.Ctx, value *lot.Lot, amount domain.Cents) (*fee.Breakdown, error) {
	b, err := im.fee.BuyerCost(c, amount, value.Region, value.SellerIsBusiness)
	if err == nil {
		return b, nil
	}
	if err == domain.ErrBadParamInput || err == domain.ErrUnknownRegion {
		return nil, err
	}

	c.WithField("err", err).Warn("fee.BuyerCost failed, pricing from fallback")
	return im.fee.EstimatedBuyerCost(c, amount, value.Region, value.SellerIsBusiness)
}

func (im *impl) SetQuantity(c ctx.Ctx, s *checkout.Session, qty int) error {
	s.Lock()
	defer s.Unlock()

	if s.Mode != checkout.ModeBuyNow {
		return domain.ErrBadParamInput
	}

	switch s.State {
	case checkout.StateSubmitting, checkout.StateSettled:
		return domain.ErrStaleState
	}

	s.Quantity = clampQuantity(qty, s.Lot.AvailableQuantity)
	return nil
}

// clampQuantity keeps a requested quantity inside [1, available].
func clampQuantity(qty, available int) int {
	if qty < 1 {
		qty = 1
	}
	if available > 0 && qty > available {
		qty = available
	}
	return qty
}

func (im *impl) Confirm(c ctx.Ctx, s *checkout.Session) error {
	s.Lock()
	defer s.Unlock()

	if s.State != checkout.StatePricingReady || s.Breakdown == nil {
		return domain.ErrStaleState
	}

	s.State = checkout.StateAwaitingConfirmation
	return nil
}

func (im *impl) Submit(c ctx.Ctx, s *checkout.Session) (*checkout.Outcome, error) {
	s.Lock()
	defer s.Unlock()

	if s.State != checkout.StateAwaitingConfirmation {
		return nil, domain.ErrStaleState
	}

	if s.Buyer.IsEmpty() {
		reject(s, checkout.ReasonAuthRequired, "sign in to submit", true)
		return nil, domain.ErrAuthRequired
	}

	// an estimate never reaches the server. Reprice first, and when the
	// authoritative schedule still cannot answer the draft stays put.
	if s.Breakdown.Estimate {
		b, err := im.fee.BuyerCost(c, s.Amount, s.Lot.Region, s.Lot.SellerIsBusiness)
		if err != nil {
			reject(s, checkout.ReasonEstimateOnly, "pricing is unavailable, try again", true)
			return nil, domain.ErrEstimateOnly
		}
		s.Breakdown = b
	}

	s.State = checkout.StateSubmitting

	switch s.Mode {
	case checkout.ModeBid:
		return im.submitBid(c, s)
	case checkout.ModeBuyNow:
		return im.submitBuyNow(c, s)
	default:
		return nil, domain.ErrBadParamInput
	}
}

func (im *impl) submitBid(c ctx.Ctx, s *checkout.Session) (*checkout.Outcome, error) {
	res, err := im.bid.Place(c, s.Lot.ToId(), s.Buyer, s.Amount)
	if err != nil {
		im.rejectAndRefresh(c, s, err)
		return nil, err
	}

	s.State = checkout.StateSettled
	s.Lot = res.Lot

	return &checkout.Outcome{
		Bid: res,
		Lot: res.Lot,
	}, nil
}

func (im *impl) submitBuyNow(c ctx.Ctx, s *checkout.Session) (*checkout.Outcome, error) {
	res, err := im.purchase.BuyNow(c, s.Lot.ToId(), s.Buyer, s.Quantity)
	if err != nil {
		if res != nil && res.Lot != nil {
			s.Lot = res.Lot
			// offer the buyer what is actually left
			s.Quantity = clampQuantity(s.Quantity, res.Lot.AvailableQuantity)
		}
		im.rejectAndRefresh(c, s, err)
		return nil, err
	}

	s.State = checkout.StateSettled
	s.Lot = res.Lot

	return &checkout.Outcome{
		Purchase: res,
		Lot:      res.Lot,
	}, nil
}

// reject parks the session in the rejected state. The caller holds the lock.
func reject(s *checkout.Session, reason checkout.Reason, message string, retryable bool) {
	s.State = checkout.StateRejected
	s.Rejection = &checkout.Rejection{
		Reason:    reason,
		Message:   message,
		Retryable: retryable,
	}
}

// rejectAndRefresh classifies a submission failure and pulls the fresh lot
// so the rejection message shows server truth, not the stale draft.
func (im *impl) rejectAndRefresh(c ctx.Ctx, s *checkout.Session, err error) {
	switch err {
	case domain.ErrBidTooLow:
		reject(s, checkout.ReasonStaleAmount, "someone outbid you, raise your bid", true)
	case domain.ErrAuctionEnded:
		reject(s, checkout.ReasonAuctionEnded, "this auction has ended", false)
	case domain.ErrInsufficientQuantity:
		reject(s, checkout.ReasonInsufficientQuantity, "not enough units left", true)
	case domain.ErrAuthRequired:
		reject(s, checkout.ReasonAuthRequired, "sign in to submit", true)
	default:
		reject(s, checkout.ReasonNetwork, "submission failed, try again", true)
	}

	if fresh, ferr := im.lot.FindOne(c, s.Lot.ToId()); ferr == nil {
		s.Lot = fresh
		if s.Mode == checkout.ModeBuyNow {
			s.Quantity = clampQuantity(s.Quantity, fresh.AvailableQuantity)
		}
	}
}
