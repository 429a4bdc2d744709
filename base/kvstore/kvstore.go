package kvstore

import (
	"errors"
	"time"

	"github.com/coocood/freecache"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/service/redis"
)

var (
	ErrNotFound = errors.New("key not found")
)

// Store is an injected key-value surface for small client-side state, like
// dismissed announcement ids or cached browse filters. Keeping it behind an
// interface lets tests swap in a map-backed fake.
type Store interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}

type localImpl struct {
	cache *freecache.Cache
}

// NewLocal creates a freecache-backed Store, size in MB.
func NewLocal(size int) Store {
	return &localImpl{freecache.NewCache(size * 1024 * 1024)}
}

func (im *localImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.cache.Get([]byte(key))
	if err != nil {
		if err == freecache.ErrNotFound {
			return nil, ErrNotFound
		}
		c.WithField("err", err).WithField("key", key).Error("kvstore.Get failed")
		return nil, err
	}
	return val, nil
}

func (im *localImpl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("kvstore.Set failed")
		return err
	}
	return nil
}

func (im *localImpl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

type redisImpl struct {
	redis redis.Service
}

// NewRedis creates a Store backed by the shared redis, for state that has
// to survive a process restart.
func NewRedis(r redis.Service) Store {
	return &redisImpl{r}
}

func (im *redisImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("kvstore.Get failed")
		return nil, err
	}
	return val, nil
}

func (im *redisImpl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.redis.Set(c, key, value, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("kvstore.Set failed")
		return err
	}
	return nil
}

func (im *redisImpl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("kvstore.Del failed")
		return err
	}
	return nil
}
