package redis

import (
	"errors"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
)

// Forever means the key has no expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")
	// ErrNoTTL is returned when the key exists but has no associated expire
	ErrNoTTL = errors.New("key has no ttl")
	// ErrExpireNotExistOrTimeout is returned when EXPIRE fails
	ErrExpireNotExistOrTimeout = errors.New("key not exist or timeout can not be set")
)

// Service abstracts the redis layer
type Service interface {
	// Get returns the value of key, ErrNotFound if the key does not exist
	Get(context ctx.Ctx, key string) ([]byte, error)

	// Set sets key to value with a ttl, Forever for no expiration
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX sets key to value only if the key does not exist
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes keys, returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// Expire resets the ttl of key
	Expire(context ctx.Ctx, key string, ttl time.Duration) error

	// TTL returns remaining ttl of key in seconds
	TTL(context ctx.Ctx, key string) (int, error)

	// Exists checks whether key exists
	Exists(context ctx.Ctx, key string) (bool, error)

	// Incrby increments the number stored at key by val
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
