package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) TestSortURLParams() {
	u, err := url.Parse("/lots?condition=used&condition=new&sort=end_date")
	s.NoError(err)

	sortURLParams(u)
	s.Equal("condition=new&condition=used&sort=end_date", u.RawQuery)
}

func (s *middlewareSuite) TestGenerateKey() {
	k1 := generateKey("/lots?category=art")
	k2 := generateKey("/lots?category=art")
	k3 := generateKey("/lots?category=coins")

	s.Equal(k1, k2)
	s.NotEqual(k1, k3)
}

func (s *middlewareSuite) TestAddContext() {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := InitMiddleware()
	h := m.AddContext()(func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(h(c))
	s.Equal(http.StatusOK, rec.Code)
}
