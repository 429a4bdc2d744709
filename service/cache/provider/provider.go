package provider

import (
	"errors"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
)

var (
	ErrNotFound = errors.New("cache provider not found")
)

type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
