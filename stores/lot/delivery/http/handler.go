package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/clock"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/middleware"
	"github.com/bidhaus/goapi/service/paging"
	"github.com/bidhaus/goapi/service/ticker"
)

type handler struct {
	lot    lot.UseCase
	pager  paging.Service
	ticker ticker.Service
}

func New(e *echo.Echo, lotUC lot.UseCase, pager paging.Service, tick ticker.Service) {
	h := &handler{lotUC, pager, tick}

	gs := e.Group("/marketplace/items")

	gs.GET("", h.search, middleware.CacheHttp(10*time.Second))

	gs.GET("/:auctionId/:lotNumber", h.get)

	gs.GET("/:auctionId/:lotNumber/countdown", h.countdown)

	e.GET("/marketplace/feed", h.feed)
}

type searchParams struct {
	SortBy    string        `query:"sortBy"`
	Offset    int32         `query:"offset"`
	Limit     int32         `query:"limit"`
	AuctionId *string       `query:"auctionId"`
	Category  *string       `query:"category"`
	Condition *string       `query:"condition"`
	MinPrice  *domain.Cents `query:"minPrice"`
	MaxPrice  *domain.Cents `query:"maxPrice"`
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &searchParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []lot.FindAllOptions{}

	if len(p.SortBy) > 0 {
		opts = append(opts, lot.WithSort(lot.SortBy(p.SortBy)))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, lot.WithPagination(p.Offset, p.Limit))
	} else {
		opts = append(opts, lot.WithPagination(0, 24))
	}

	if p.AuctionId != nil {
		opts = append(opts, lot.WithAuctionId(*p.AuctionId))
	}

	if p.Category != nil {
		opts = append(opts, lot.WithCategory(*p.Category))
	}

	if p.Condition != nil {
		opts = append(opts, lot.WithCondition(*p.Condition))
	}

	if p.MinPrice != nil || p.MaxPrice != nil {
		opts = append(opts, lot.WithPriceRange(p.MinPrice, p.MaxPrice))
	}

	res, err := h.lot.Search(ctx, opts...)
	if err != nil {
		if err == domain.ErrBadParamInput {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		ctx.WithField("err", err).Error("lot.Search failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// feed pages over a point-in-time snapshot, so a buyer scrolling the list
// never sees an item twice because a lot closed mid-walk.
func (h *handler) feed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Cursor string `query:"cursor"`
		Size   int    `query:"size"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Size <= 0 || p.Size > 100 {
		p.Size = 24
	}

	items := []*lot.Lot{}
	next, total, err := h.pager.Get(ctx, "endingSoon", p.Cursor, p.Size, &items)
	if err != nil {
		if err == paging.ErrBadCursor {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		ctx.WithField("err", err).Error("pager.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Items      []*lot.Lot `json:"items"`
		NextCursor string     `json:"nextCursor"`
		Total      int        `json:"total"`
	}{items, next, total}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type lotDetail struct {
	*lot.Lot
	Countdown countdown `json:"countdown"`
}

type countdown struct {
	Phase     clock.Phase `json:"phase"`
	Remaining clock.Parts `json:"remaining"`
}

func makeCountdown(end, now time.Time) countdown {
	remaining := clock.Remaining(end, now)
	return countdown{
		Phase:     clock.Classify(remaining),
		Remaining: clock.Split(remaining),
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := lot.Id{}

	if err := c.Bind(&id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	value, err := h.lot.FindOne(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		ctx.WithField("err", err).Error("lot.FindOne failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := lotDetail{
		Lot:       value,
		Countdown: makeCountdown(value.EndDate, time.Now()),
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// countdown streams per-second countdown updates over SSE. The end date
// is re-read on every tick so an anti-sniping extension shows up live.
func (h *handler) countdown(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := lot.Id{}

	if err := c.Bind(&id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if _, err := h.lot.FindOne(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return delivery.MakeJsonResp(c, http.StatusNotFound, err)
		}
		ctx.WithField("err", err).Error("lot.FindOne failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(now time.Time) (clock.Phase, error) {
		value, err := h.lot.FindOne(ctx, id)
		if err != nil {
			return clock.PhaseEnded, err
		}
		cd := makeCountdown(value.EndDate, now)
		data, err := json.Marshal(cd)
		if err != nil {
			return clock.PhaseEnded, err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return clock.PhaseEnded, err
		}
		w.Flush()
		return cd.Phase, nil
	}

	if phase, err := send(time.Now()); err != nil || phase == clock.PhaseEnded {
		return nil
	}

	ticks, cancel := h.ticker.Subscribe(ctx)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			if phase, err := send(now); err != nil || phase == clock.PhaseEnded {
				return nil
			}
		}
	}
}
