package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	"github.com/bidhaus/goapi/domain/lot"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	bid bid.UseCase
}

func New(e *echo.Echo, bidUC bid.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{bidUC}

	g := e.Group("/multi-item-listings/:auctionId/lots/:lotNumber")

	g.POST("/bid", h.place, am.Auth())

	g.GET("/bids", h.history)
}

func (h *handler) place(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bidder, ok := c.Get("user").(domain.UserId)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrAuthRequired)
	}

	type params struct {
		lot.Id
		Amount domain.Cents `json:"amount"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.bid.Place(ctx, p.Id, bidder, p.Amount)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrBidTooLow, domain.ErrAuctionEnded:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		ctx.WithField("err", err).Error("bid.Place failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) history(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		lot.Id
		Offset int32 `query:"offset"`
		Limit  int32 `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Limit == 0 {
		p.Limit = 20
	}

	res, err := h.bid.History(ctx, p.Id, p.Offset, p.Limit)
	if err != nil {
		ctx.WithField("err", err).Error("bid.History failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
