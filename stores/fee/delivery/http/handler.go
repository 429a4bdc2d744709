package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/fee"
	"github.com/bidhaus/goapi/middleware"
)

type handler struct {
	calculator fee.Calculator
}

func New(e *echo.Echo, calculator fee.Calculator) {
	h := &handler{calculator}

	g := e.Group("/fees")

	g.GET("/calculate-buyer-cost", h.calculateBuyerCost, middleware.CacheHttp(time.Minute))
}

func (h *handler) calculateBuyerCost(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Amount           domain.Cents `query:"amount"`
		Region           string       `query:"region"`
		SellerIsBusiness bool         `query:"sellerIsBusiness"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.calculator.BuyerCost(ctx, p.Amount, p.Region, p.SellerIsBusiness)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case domain.ErrBadParamInput, domain.ErrUnknownRegion:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("fee.BuyerCost failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
