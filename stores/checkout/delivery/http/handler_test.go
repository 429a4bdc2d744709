package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/checkout"
	checkoutMocks "github.com/bidhaus/goapi/domain/checkout/mocks"
)

type sessionRegistrySuite struct {
	suite.Suite

	uc *checkoutMocks.UseCase
	h  *handler
}

func TestSessionRegistrySuite(t *testing.T) {
	suite.Run(t, new(sessionRegistrySuite))
}

func (s *sessionRegistrySuite) SetupTest() {
	s.uc = &checkoutMocks.UseCase{}
	s.h = &handler{
		checkout: s.uc,
		sessions: map[string]*entry{},
	}
}

func (s *sessionRegistrySuite) put(sess *checkout.Session, lastSeen time.Time) {
	s.h.sessions[sess.SessionId] = &entry{sess: sess, lastSeen: lastSeen}
}

func (s *sessionRegistrySuite) request(method, sessionId string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("sessionId")
	c.SetParamValues(sessionId)
	c.Set("ctx", ctx.Background())
	c.Set("user", domain.UserId("buyer-1"))
	return c, rec
}

func (s *sessionRegistrySuite) has(sessionId string) bool {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	_, ok := s.h.sessions[sessionId]
	return ok
}

func (s *sessionRegistrySuite) TestSweepEvictsIdleDrafts() {
	now := time.Now()
	s.put(&checkout.Session{SessionId: "stale"}, now.Add(-sessionIdleTtl-time.Minute))
	s.put(&checkout.Session{SessionId: "fresh"}, now)

	s.h.sweep(now)

	s.False(s.has("stale"))
	s.True(s.has("fresh"))
}

func (s *sessionRegistrySuite) TestAccessKeepsDraftAlive() {
	now := time.Now()
	s.put(&checkout.Session{SessionId: "s-1"}, now.Add(-sessionIdleTtl+time.Minute))

	c, rec := s.request(http.MethodGet, "s-1")
	s.NoError(s.h.get(c))
	s.Equal(http.StatusOK, rec.Code)

	// the read moved lastSeen forward, a sweep that would have evicted the
	// untouched draft now leaves it alone
	s.h.sweep(now.Add(2 * time.Minute))
	s.True(s.has("s-1"))
}

func (s *sessionRegistrySuite) TestSubmitDropsSettledDraft() {
	sess := &checkout.Session{
		SessionId: "s-1",
		Buyer:     domain.UserId("buyer-1"),
		State:     checkout.StateAwaitingConfirmation,
	}
	s.put(sess, time.Now())

	s.uc.On("Submit", mock.Anything, sess).Return(&checkout.Outcome{}, nil).Once()

	c, rec := s.request(http.MethodPost, "s-1")
	s.NoError(s.h.submit(c))
	s.Equal(http.StatusOK, rec.Code)

	s.False(s.has("s-1"))
}

func (s *sessionRegistrySuite) TestSubmitKeepsRetryableRejection() {
	sess := &checkout.Session{
		SessionId: "s-1",
		Buyer:     domain.UserId("buyer-1"),
		State:     checkout.StateAwaitingConfirmation,
	}
	s.put(sess, time.Now())

	s.uc.On("Submit", mock.Anything, sess).Run(func(mock.Arguments) {
		sess.State = checkout.StateRejected
		sess.Rejection = &checkout.Rejection{Reason: checkout.ReasonStaleAmount, Retryable: true}
	}).Return(nil, domain.ErrBidTooLow).Once()

	c, rec := s.request(http.MethodPost, "s-1")
	s.NoError(s.h.submit(c))
	s.Equal(http.StatusConflict, rec.Code)

	// the buyer can re-enter through SetAmount, the draft stays
	s.True(s.has("s-1"))
}

func (s *sessionRegistrySuite) TestSubmitDropsDeadDraft() {
	sess := &checkout.Session{
		SessionId: "s-1",
		Buyer:     domain.UserId("buyer-1"),
		State:     checkout.StateAwaitingConfirmation,
	}
	s.put(sess, time.Now())

	s.uc.On("Submit", mock.Anything, sess).Run(func(mock.Arguments) {
		sess.State = checkout.StateRejected
		sess.Rejection = &checkout.Rejection{Reason: checkout.ReasonAuctionEnded, Retryable: false}
	}).Return(nil, domain.ErrAuctionEnded).Once()

	c, rec := s.request(http.MethodPost, "s-1")
	s.NoError(s.h.submit(c))
	s.Equal(http.StatusConflict, rec.Code)

	s.False(s.has("s-1"))
}
