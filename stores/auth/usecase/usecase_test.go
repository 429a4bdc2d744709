package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	tkn, err := u.SignToken(ctx, "buyer-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	user, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.UserId("buyer-1"), user)
}

func TestSignTokenRequiresUser(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	_, err := u.SignToken(ctx, "")
	assert.Equal(t, domain.ErrBadParamInput, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	ctx := ctx.Background()

	tkn, err := usecase.New("secret-a", time.Hour).SignToken(ctx, "buyer-1")
	assert.NoError(t, err)

	_, err = usecase.New("secret-b", time.Hour).ParseToken(ctx, tkn)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	ctx := ctx.Background()

	_, err := usecase.New("jwt-secret", time.Hour).ParseToken(ctx, "not-a-token")
	assert.Equal(t, domain.ErrInvalidToken, err)
}
