package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/bidhaus/goapi/base/ctx"
)

type JwtCustomClaims struct {
	UserId string `json:"data"`
	jwt.StandardClaims
}

// AuthUsecase signs and parses bearer tokens. Identity itself lives in an
// external service, the token subject is the bidder id.
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, user UserId) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (UserId, error)
}
