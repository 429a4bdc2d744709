package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/metrics"
	"github.com/bidhaus/goapi/service/cache/provider"
)

type impl struct {
	cache   *freecache.Cache
	metrics metrics.Service
	nameTag string
}

func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{
		cache:   freecache.NewCache(sizeMB * 1024 * 1024),
		metrics: metrics.New("primitive_cache"),
		nameTag: "name:" + name,
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	data, err := im.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		im.metrics.BumpSum("get.miss", 1, im.nameTag)
		return nil, provider.ErrNotFound
	} else if err != nil {
		im.metrics.BumpSum("get.err", 1, im.nameTag)
		return nil, err
	}

	im.metrics.BumpSum("get.hit", 1, im.nameTag)
	return data, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		im.metrics.BumpSum("set.err", 1, im.nameTag)
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
