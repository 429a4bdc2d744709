package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	bidMocks "github.com/bidhaus/goapi/domain/bid/mocks"
	"github.com/bidhaus/goapi/domain/checkout"
	"github.com/bidhaus/goapi/domain/fee"
	feeMocks "github.com/bidhaus/goapi/domain/fee/mocks"
	"github.com/bidhaus/goapi/domain/lot"
	lotMocks "github.com/bidhaus/goapi/domain/lot/mocks"
	"github.com/bidhaus/goapi/domain/purchase"
	purchaseMocks "github.com/bidhaus/goapi/domain/purchase/mocks"
)

var (
	mockCtx = ctx.Background()
	lotId   = lot.Id{AuctionId: "fall-2023", LotNumber: 7}
	buyer   = domain.UserId("buyer-1")
)

type checkoutSuite struct {
	suite.Suite

	lotUC      *lotMocks.UseCase
	calculator *feeMocks.Calculator
	bidUC      *bidMocks.UseCase
	purchaseUC *purchaseMocks.UseCase
	im         checkout.UseCase
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) SetupTest() {
	s.lotUC = &lotMocks.UseCase{}
	s.calculator = &feeMocks.Calculator{}
	s.bidUC = &bidMocks.UseCase{}
	s.purchaseUC = &purchaseMocks.UseCase{}
	s.im = New(&CheckoutUseCaseCfg{
		Lot:      s.lotUC,
		Fee:      s.calculator,
		Bid:      s.bidUC,
		Purchase: s.purchaseUC,
	})
}

func (s *checkoutSuite) openLot() *lot.Lot {
	return &lot.Lot{
		AuctionId:         lotId.AuctionId,
		LotNumber:         lotId.LotNumber,
		Region:            "QC",
		SellerIsBusiness:  true,
		CurrentPrice:      10000,
		BuyNowEnabled:     true,
		BuyNowPrice:       2500,
		TotalQuantity:     5,
		AvailableQuantity: 5,
		EndDate:           time.Now().Add(time.Hour),
	}
}

func (s *checkoutSuite) breakdown(hammer domain.Cents, estimate bool) *fee.Breakdown {
	return &fee.Breakdown{
		Hammer:   hammer,
		Region:   "QC",
		Estimate: estimate,
	}
}

func (s *checkoutSuite) begin(mode checkout.Mode) *checkout.Session {
	s.lotUC.On("FindOne", mock.Anything, lotId).Return(s.openLot(), nil).Once()
	sess, err := s.im.Begin(mockCtx, lotId, buyer, mode)
	s.Require().NoError(err)
	s.Equal(checkout.StateDrafting, sess.State)
	return sess
}

func (s *checkoutSuite) TestBeginBuyNowSwitchedOff() {
	// the price stays on the lot while the option is off
	cur := s.openLot()
	cur.BuyNowEnabled = false

	s.lotUC.On("FindOne", mock.Anything, lotId).Return(cur, nil).Once()

	_, err := s.im.Begin(mockCtx, lotId, buyer, checkout.ModeBuyNow)
	s.Equal(domain.ErrBuyNowDisabled, err)
}

func (s *checkoutSuite) TestBidFlowSettles() {
	sess := s.begin(checkout.ModeBid)

	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(s.breakdown(11000, false), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)
	<-done

	snap := sess.Snapshot()
	s.Equal(checkout.StatePricingReady, snap.State)
	s.Require().NotNil(snap.Breakdown)
	s.Equal(domain.Cents(11000), snap.Breakdown.Hammer)

	s.Require().NoError(s.im.Confirm(mockCtx, sess))
	s.Equal(checkout.StateAwaitingConfirmation, sess.Snapshot().State)

	placed := &bid.PlaceResult{
		Bid: &bid.Bid{Amount: 11000, Bidder: buyer},
		Lot: &lot.Lot{CurrentPrice: 11000, BidCount: 1},
	}
	s.bidUC.On("Place", mock.Anything, lotId, buyer, domain.Cents(11000)).Return(placed, nil).Once()

	outcome, err := s.im.Submit(mockCtx, sess)
	s.Require().NoError(err)
	s.Equal(placed, outcome.Bid)

	snap = sess.Snapshot()
	s.Equal(checkout.StateSettled, snap.State)
	// the settled price is the server's, not the draft's
	s.Equal(domain.Cents(11000), snap.Lot.CurrentPrice)
}

func (s *checkoutSuite) TestSetAmountGatesLocally() {
	sess := s.begin(checkout.ModeBid)

	_, err := s.im.SetAmount(mockCtx, sess, 10000)
	s.Equal(domain.ErrBidTooLow, err)

	_, err = s.im.SetAmount(mockCtx, sess, 0)
	s.Equal(domain.ErrBadParamInput, err)

	// no pricing request for a bid that cannot win
	s.calculator.AssertNotCalled(s.T(), "BuyerCost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *checkoutSuite) TestNewerAmountSupersedesPricing() {
	sess := s.begin(checkout.ModeBid)

	gate := make(chan time.Time)
	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		WaitUntil(gate).
		Return(s.breakdown(11000, false), nil).Once()
	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(12000), "QC", true).
		Return(s.breakdown(12000, false), nil).Once()

	done1, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)

	done2, err := s.im.SetAmount(mockCtx, sess, 12000)
	s.Require().NoError(err)

	<-done2
	close(gate)
	<-done1

	// the slow response for the old amount never lands
	snap := sess.Snapshot()
	s.Equal(checkout.StatePricingReady, snap.State)
	s.Equal(domain.Cents(12000), snap.Breakdown.Hammer)
	s.Equal(domain.Cents(12000), snap.Amount)
}

func (s *checkoutSuite) TestEstimateNeverSubmits() {
	sess := s.begin(checkout.ModeBid)

	// authoritative pricing is down, the estimate keeps the UI moving
	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(nil, domain.ErrInternalServerError).Once()
	s.calculator.On("EstimatedBuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(s.breakdown(11000, true), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)
	<-done

	s.True(sess.Snapshot().Breakdown.Estimate)
	s.Require().NoError(s.im.Confirm(mockCtx, sess))

	// still down at submit time, the draft stays put
	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(nil, domain.ErrInternalServerError).Once()

	_, err = s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrEstimateOnly, err)

	snap := sess.Snapshot()
	s.Equal(checkout.StateRejected, snap.State)
	s.Equal(checkout.ReasonEstimateOnly, snap.Rejection.Reason)
	s.True(snap.Rejection.Retryable)

	s.bidUC.AssertNotCalled(s.T(), "Place", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *checkoutSuite) TestOutbidRejectionIsRetryable() {
	sess := s.begin(checkout.ModeBid)

	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(s.breakdown(11000, false), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)
	<-done
	s.Require().NoError(s.im.Confirm(mockCtx, sess))

	s.bidUC.On("Place", mock.Anything, lotId, buyer, domain.Cents(11000)).
		Return(nil, domain.ErrBidTooLow).Once()

	fresh := s.openLot()
	fresh.CurrentPrice = 11500
	s.lotUC.On("FindOne", mock.Anything, lotId).Return(fresh, nil).Once()

	_, err = s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrBidTooLow, err)

	snap := sess.Snapshot()
	s.Equal(checkout.StateRejected, snap.State)
	s.Equal(checkout.ReasonStaleAmount, snap.Rejection.Reason)
	s.True(snap.Rejection.Retryable)
	// the rejection shows server truth
	s.Equal(domain.Cents(11500), snap.Lot.CurrentPrice)

	// the buyer re-enters with a higher amount
	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(12000), "QC", true).
		Return(s.breakdown(12000, false), nil).Once()

	done, err = s.im.SetAmount(mockCtx, sess, 12000)
	s.Require().NoError(err)
	<-done
	s.Equal(checkout.StatePricingReady, sess.Snapshot().State)
}

func (s *checkoutSuite) TestEndedAuctionIsFinal() {
	sess := s.begin(checkout.ModeBid)

	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(s.breakdown(11000, false), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)
	<-done
	s.Require().NoError(s.im.Confirm(mockCtx, sess))

	s.bidUC.On("Place", mock.Anything, lotId, buyer, domain.Cents(11000)).
		Return(nil, domain.ErrAuctionEnded).Once()
	s.lotUC.On("FindOne", mock.Anything, lotId).Return(s.openLot(), nil).Once()

	_, err = s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrAuctionEnded, err)

	snap := sess.Snapshot()
	s.Equal(checkout.ReasonAuctionEnded, snap.Rejection.Reason)
	s.False(snap.Rejection.Retryable)
}

func (s *checkoutSuite) TestBuyNowReclampsOnShortage() {
	sess := s.begin(checkout.ModeBuyNow)
	s.Equal(1, sess.Snapshot().Quantity)

	s.Require().NoError(s.im.SetQuantity(mockCtx, sess, 4))
	s.Equal(4, sess.Snapshot().Quantity)

	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(2500), "QC", true).
		Return(s.breakdown(2500, false), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 2500)
	s.Require().NoError(err)
	<-done
	s.Require().NoError(s.im.Confirm(mockCtx, sess))

	short := s.openLot()
	short.AvailableQuantity = 2
	s.purchaseUC.On("BuyNow", mock.Anything, lotId, buyer, 4).
		Return(&purchase.BuyNowResult{Lot: short}, domain.ErrInsufficientQuantity).Once()
	s.lotUC.On("FindOne", mock.Anything, lotId).Return(short, nil).Once()

	_, err = s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrInsufficientQuantity, err)

	snap := sess.Snapshot()
	s.Equal(checkout.ReasonInsufficientQuantity, snap.Rejection.Reason)
	s.True(snap.Rejection.Retryable)
	// the draft offers what is actually left
	s.Equal(2, snap.Quantity)
}

func (s *checkoutSuite) TestSetQuantityClamps() {
	sess := s.begin(checkout.ModeBuyNow)

	s.Require().NoError(s.im.SetQuantity(mockCtx, sess, 99))
	s.Equal(5, sess.Snapshot().Quantity)

	s.Require().NoError(s.im.SetQuantity(mockCtx, sess, 0))
	s.Equal(1, sess.Snapshot().Quantity)
}

func (s *checkoutSuite) TestSetQuantityRejectsBidMode() {
	sess := s.begin(checkout.ModeBid)
	s.Equal(domain.ErrBadParamInput, s.im.SetQuantity(mockCtx, sess, 2))
}

func (s *checkoutSuite) TestSubmitRequiresConfirmation() {
	sess := s.begin(checkout.ModeBid)

	_, err := s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrStaleState, err)
}

func (s *checkoutSuite) TestSubmitRequiresAuth() {
	s.lotUC.On("FindOne", mock.Anything, lotId).Return(s.openLot(), nil).Once()
	sess, err := s.im.Begin(mockCtx, lotId, "", checkout.ModeBid)
	s.Require().NoError(err)

	s.calculator.On("BuyerCost", mock.Anything, domain.Cents(11000), "QC", true).
		Return(s.breakdown(11000, false), nil).Once()

	done, err := s.im.SetAmount(mockCtx, sess, 11000)
	s.Require().NoError(err)
	<-done
	s.Require().NoError(s.im.Confirm(mockCtx, sess))

	_, err = s.im.Submit(mockCtx, sess)
	s.Equal(domain.ErrAuthRequired, err)
	s.Equal(checkout.ReasonAuthRequired, sess.Snapshot().Rejection.Reason)

	s.bidUC.AssertNotCalled(s.T(), "Place", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
