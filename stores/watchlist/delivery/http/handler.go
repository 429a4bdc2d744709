package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/watchlist"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	watchlist watchlist.UseCase
}

func New(e *echo.Echo, watchlistUC watchlist.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{watchlistUC}

	g := e.Group("/marketplace/items/:auctionId/:lotNumber/watch")

	g.PUT("", h.toggle, am.Auth())

	g.GET("", h.get, am.OptionalAuth())

	e.GET("/watchlist", h.list, am.Auth())
}

func (h *handler) toggle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	watcher := authMiddleware.UserFromEchoCtx(c)

	type params struct {
		lot.Id
		Watched bool `json:"watched"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.watchlist.Toggle(ctx, p.Id, watcher, p.Watched)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		ctx.WithField("err", err).Error("watchlist.Toggle failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := lot.Id{}

	if err := c.Bind(&id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	count, err := h.watchlist.Count(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("watchlist.Count failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Watched bool `json:"watched"`
		Count   int  `json:"count"`
	}{Count: count}

	if watcher := authMiddleware.UserFromEchoCtx(c); !watcher.IsEmpty() {
		watched, err := h.watchlist.IsWatched(ctx, id, watcher)
		if err != nil {
			ctx.WithField("err", err).Error("watchlist.IsWatched failed")
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		res.Watched = watched
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	watcher := authMiddleware.UserFromEchoCtx(c)
	if watcher.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrAuthRequired)
	}

	res, err := h.watchlist.ListByWatcher(ctx, watcher)
	if err != nil {
		ctx.WithField("err", err).Error("watchlist.ListByWatcher failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
