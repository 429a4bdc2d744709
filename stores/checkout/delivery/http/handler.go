package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/checkout"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/service/ticker"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

// a draft untouched this long is abandoned
const sessionIdleTtl = 30 * time.Minute

type entry struct {
	sess     *checkout.Session
	lastSeen time.Time
}

type handler struct {
	checkout checkout.UseCase

	// sessions live in process memory, a draft does not survive a restart.
	// Settled and dead drafts are dropped right away, the rest age out
	// through the sweep so anonymous begins cannot grow the map forever.
	mu       sync.Mutex
	sessions map[string]*entry
}

func New(e *echo.Echo, checkoutUC checkout.UseCase, am *authMiddleware.AuthMiddleware, tick ticker.Service) {
	h := &handler{
		checkout: checkoutUC,
		sessions: map[string]*entry{},
	}

	go h.sweepLoop(tick)

	g := e.Group("/checkout")

	g.POST("", h.begin, am.OptionalAuth())

	g.GET("/:sessionId", h.get, am.OptionalAuth())

	g.PUT("/:sessionId/amount", h.setAmount, am.OptionalAuth())

	g.PUT("/:sessionId/quantity", h.setQuantity, am.OptionalAuth())

	g.POST("/:sessionId/confirm", h.confirm, am.OptionalAuth())

	g.POST("/:sessionId/submit", h.submit, am.Auth())
}

func (h *handler) begin(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		lot.Id
		Mode checkout.Mode `json:"mode"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Mode != checkout.ModeBid && p.Mode != checkout.ModeBuyNow {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	buyer := authMiddleware.UserFromEchoCtx(c)

	sess, err := h.checkout.Begin(ctx, p.Id, buyer, p.Mode)
	if err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		ctx.WithField("err", err).Error("checkout.Begin failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	h.mu.Lock()
	h.sessions[sess.SessionId] = &entry{sess: sess, lastSeen: time.Now()}
	h.mu.Unlock()

	return delivery.MakeJsonResp(c, http.StatusCreated, sess.Snapshot())
}

func (h *handler) get(c echo.Context) error {
	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}
	return delivery.MakeJsonResp(c, http.StatusOK, sess.Snapshot())
}

func (h *handler) setAmount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}

	type params struct {
		Amount domain.Cents `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	done, err := h.checkout.SetAmount(ctx, sess, p.Amount)
	switch err {
	case nil:
		// wait for pricing so the response carries the breakdown
		<-done
		return delivery.MakeJsonResp(c, http.StatusOK, sess.Snapshot())
	case domain.ErrBadParamInput, domain.ErrBidTooLow:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrStaleState:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		ctx.WithField("err", err).Error("checkout.SetAmount failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) setQuantity(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}

	type params struct {
		Quantity int `json:"quantity"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	switch err := h.checkout.SetQuantity(ctx, sess, p.Quantity); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, sess.Snapshot())
	case domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrStaleState:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		ctx.WithField("err", err).Error("checkout.SetQuantity failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) confirm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}

	switch err := h.checkout.Confirm(ctx, sess); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, sess.Snapshot())
	case domain.ErrStaleState:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		ctx.WithField("err", err).Error("checkout.Confirm failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sess, errResp := h.session(c)
	if sess == nil {
		return errResp
	}

	// an anonymous draft picks up the buyer at submit time
	if user := authMiddleware.UserFromEchoCtx(c); !user.IsEmpty() {
		sess.Lock()
		if sess.Buyer.IsEmpty() {
			sess.Buyer = user
		} else if sess.Buyer != user {
			sess.Unlock()
			return delivery.MakeJsonResp(c, http.StatusForbidden, domain.ErrAuthRequired)
		}
		sess.Unlock()
	}

	outcome, err := h.checkout.Submit(ctx, sess)
	switch err {
	case nil:
		h.drop(sess.SessionId)
		return delivery.MakeJsonResp(c, http.StatusOK, outcome)
	case domain.ErrStaleState:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrBidTooLow, domain.ErrAuctionEnded, domain.ErrInsufficientQuantity, domain.ErrEstimateOnly:
		// the rejection detail rides in the snapshot. A dead draft has no
		// way back in, keeping it around only pins memory
		snap := sess.Snapshot()
		if snap.Rejection != nil && !snap.Rejection.Retryable {
			h.drop(sess.SessionId)
		}
		return delivery.MakeJsonResp(c, http.StatusConflict, snap)
	default:
		ctx.WithField("err", err).Error("checkout.Submit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) session(c echo.Context) (*checkout.Session, error) {
	h.mu.Lock()
	ent, ok := h.sessions[c.Param("sessionId")]
	if ok {
		ent.lastSeen = time.Now()
	}
	h.mu.Unlock()

	if !ok {
		return nil, delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return ent.sess, nil
}

func (h *handler) drop(sessionId string) {
	h.mu.Lock()
	delete(h.sessions, sessionId)
	h.mu.Unlock()
}

func (h *handler) sweepLoop(tick ticker.Service) {
	ch, cancel := tick.Subscribe(ctx.Background())
	defer cancel()

	for now := range ch {
		h.sweep(now)
	}
}

func (h *handler) sweep(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ent := range h.sessions {
		if now.Sub(ent.lastSeen) > sessionIdleTtl {
			delete(h.sessions, id)
		}
	}
}
