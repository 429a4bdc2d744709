package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/delivery"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/announcement"
	authMiddleware "github.com/bidhaus/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	announcement announcement.UseCase
}

func New(e *echo.Echo, announcementUC announcement.UseCase, am *authMiddleware.AuthMiddleware) {
	h := &handler{announcementUC}

	g := e.Group("/announcements")

	g.GET("", h.active, am.OptionalAuth())

	g.POST("/:id/dismiss", h.dismiss, am.Auth())
}

func (h *handler) active(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	user := authMiddleware.UserFromEchoCtx(c)

	res, err := h.announcement.Active(ctx, user)
	if err != nil {
		ctx.WithField("err", err).Error("announcement.Active failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) dismiss(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	user := authMiddleware.UserFromEchoCtx(c)

	switch err := h.announcement.Dismiss(ctx, user, c.Param("id")); err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, "ok")
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrAuthRequired:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		ctx.WithField("err", err).Error("announcement.Dismiss failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
