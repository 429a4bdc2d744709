package checkout

import (
	"context"
	"sync"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	"github.com/bidhaus/goapi/domain/fee"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/purchase"
)

// State is the checkout position of a buyer's draft. Transitions are owned
// by the UseCase, everything else only reads.
//
//	Idle -> Drafting -> PricingRequested -> PricingReady
//	     -> AwaitingConfirmation -> Submitting -> Settled | Rejected
//
// A rejected retryable draft re-enters the flow through SetAmount.
type State string

const (
	StateIdle                 State = "idle"
	StateDrafting             State = "drafting"
	StatePricingRequested     State = "pricing_requested"
	StatePricingReady         State = "pricing_ready"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateSubmitting           State = "submitting"
	StateSettled              State = "settled"
	StateRejected             State = "rejected"
)

type Mode string

const (
	ModeBid    Mode = "bid"
	ModeBuyNow Mode = "buy_now"
)

// Reason classifies a rejection for the message shown to the buyer.
type Reason string

const (
	ReasonStaleAmount          Reason = "stale_amount"
	ReasonAuctionEnded         Reason = "auction_ended"
	ReasonInsufficientQuantity Reason = "insufficient_quantity"
	ReasonAuthRequired         Reason = "auth_required"
	ReasonEstimateOnly         Reason = "estimate_only"
	ReasonNetwork              Reason = "network"
)

type Rejection struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
	// Retryable failures keep the draft, the buyer decides to resubmit.
	// Nothing retries automatically.
	Retryable bool `json:"retryable"`
}

// Session is one buyer's in-flight checkout on one lot. The UseCase is the
// only writer, under the session lock.
type Session struct {
	sync.Mutex

	SessionId string
	Buyer     domain.UserId
	Mode      Mode

	State     State
	Lot       *lot.Lot
	Amount    domain.Cents
	Quantity  int
	Breakdown *fee.Breakdown
	Rejection *Rejection

	// Generation guards against stale pricing responses. Each SetAmount
	// bumps it and cancels the previous request, a pricing result only
	// lands when its generation is still current.
	Generation    uint64
	CancelPricing context.CancelFunc
}

// Snapshot is a read-only copy for delivery and tests.
type Snapshot struct {
	SessionId string         `json:"sessionId"`
	State     State          `json:"state"`
	Lot       *lot.Lot       `json:"lot"`
	Amount    domain.Cents   `json:"amount"`
	Quantity  int            `json:"quantity"`
	Breakdown *fee.Breakdown `json:"breakdown,omitempty"`
	Rejection *Rejection     `json:"rejection,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()

	return Snapshot{
		SessionId: s.SessionId,
		State:     s.State,
		Lot:       s.Lot,
		Amount:    s.Amount,
		Quantity:  s.Quantity,
		Breakdown: s.Breakdown,
		Rejection: s.Rejection,
	}
}

// Outcome is the server response a settled checkout refreshed from.
type Outcome struct {
	Bid      *bid.PlaceResult       `json:"bid,omitempty"`
	Purchase *purchase.BuyNowResult `json:"purchase,omitempty"`
	Lot      *lot.Lot               `json:"lot"`
}

type UseCase interface {
	// Begin loads the lot and opens a drafting session.
	Begin(c ctx.Ctx, id lot.Id, buyer domain.UserId, mode Mode) (*Session, error)

	// SetAmount validates the draft amount against the cached lot state,
	// then prices it asynchronously. A newer amount supersedes an in-flight
	// pricing request. The returned channel closes when this request's
	// pricing lands or is superseded.
	SetAmount(c ctx.Ctx, s *Session, amount domain.Cents) (<-chan struct{}, error)

	// SetQuantity clamps and stores the buy now quantity.
	SetQuantity(c ctx.Ctx, s *Session, qty int) error

	// Confirm moves a priced draft to awaiting confirmation. Submission is
	// always a separate, explicit step.
	Confirm(c ctx.Ctx, s *Session) error

	// Submit executes the money moving call. On success the session settles
	// and the lot state comes from the server response. On rejection the
	// session records a classified Rejection and refreshes the lot.
	Submit(c ctx.Ctx, s *Session) (*Outcome, error)
}
