package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp renders the api envelope. Errors passed as data are mapped to
// their HTTP status so handlers do not repeat the taxonomy per route.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrBadParamInput) || errors.Is(err, domain.ErrUnknownRegion):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrAuthRequired) || errors.Is(err, domain.ErrInvalidToken):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrBidTooLow),
			errors.Is(err, domain.ErrInsufficientQuantity),
			errors.Is(err, domain.ErrStaleState),
			errors.Is(err, domain.ErrAuctionEnded),
			errors.Is(err, domain.ErrBuyNowDisabled):
			status = http.StatusConflict
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
