package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// bid / checkout errors, recovered at the checkout boundary and
	// converted to a single user facing message each
	ErrBidTooLow            = errors.New("bid amount must exceed current price")
	ErrAuctionEnded         = errors.New("auction has ended")
	ErrInsufficientQuantity = errors.New("not enough units available")
	ErrStaleState           = errors.New("lot state changed, refresh required")
	ErrAuthRequired         = errors.New("authentication required")
	ErrBuyNowDisabled       = errors.New("buy now is not enabled for this lot")
	ErrEstimateOnly         = errors.New("pricing is an estimate, refetch before submit")
	ErrUnknownRegion        = errors.New("unknown tax region")

	ErrInvalidToken = errors.New("invalid token")
)
