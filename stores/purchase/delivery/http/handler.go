package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/purchase"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	purchase purchase.UseCase
}

func New(e *echo.Echo, purchaseUC purchase.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{purchaseUC}

	e.POST("/multi-item-listings/:auctionId/lots/:lotNumber/buy-now", h.buyNow, am.Auth())

	g := e.Group("/purchases")

	g.GET("", h.list, am.Auth())

	g.POST("/:purchaseId/confirm", h.confirm, am.Auth())

	g.POST("/:purchaseId/reject", h.reject, am.Auth())
}

func (h *handler) buyNow(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer, ok := c.Get("user").(domain.UserId)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrAuthRequired)
	}

	type params struct {
		lot.Id
		Quantity int `json:"quantity"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.purchase.BuyNow(ctx, p.Id, buyer, p.Quantity)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrBadParamInput, domain.ErrBuyNowDisabled:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrAuctionEnded:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInsufficientQuantity:
		// the fresh availability rides along so the client can re-clamp
		return delivery.MakeJsonResp(c, http.StatusConflict, res)
	default:
		ctx.WithField("err", err).Error("purchase.BuyNow failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer, ok := c.Get("user").(domain.UserId)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrAuthRequired)
	}

	type params struct {
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

	res, err := h.purchase.ListByBuyer(ctx, buyer, p.Offset, p.Limit)
	if err != nil {
		ctx.WithField("err", err).Error("purchase.ListByBuyer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) confirm(c echo.Context) error {
	return h.settle(c, h.purchase.Confirm)
}

func (h *handler) reject(c echo.Context) error {
	return h.settle(c, h.purchase.Reject)
}

func (h *handler) settle(c echo.Context, fn func(ctx.Ctx, string, domain.UserId) error) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller, ok := c.Get("user").(domain.UserId)
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrAuthRequired)
	}

	purchaseId := c.Param("purchaseId")

	switch err := fn(ctx, purchaseId, caller); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrStaleState:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		ctx.WithField("err", err).Error("purchase settle failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
