package cache

import (
	"encoding/json"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/log"
	"github.com/bidhaus/goapi/domain/keys"
	"github.com/bidhaus/goapi/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(cfg ServiceConfig) Service {
	im := &impl{
		ttl:         cfg.Ttl,
		pfx:         cfg.Pfx,
		cache:       cfg.Cache,
		serialize:   cfg.Serialize,
		deserialize: cfg.Deserialize,
	}

	if im.serialize == nil {
		im.serialize = json.Marshal
	}

	if im.deserialize == nil {
		im.deserialize = json.Unmarshal
	}

	return im
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	if err := im.Get(c, key, container); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	value, err := getter()
	if err != nil {
		return err
	}

	data, err := im.serialize(value)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.serialize failed")
		return err
	}

	if err := im.deserialize(data, container); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.deserialize failed")
		return err
	}

	if err := im.cache.Set(c, im.getKey(key), data, im.ttl); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Warn("im.cache.Set failed")
	}

	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	data, err := im.cache.Get(c, im.getKey(key))
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.cache.Get failed")
		return err
	}

	if err := im.deserialize(data, container); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.deserialize failed")
		return err
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	data, err := im.serialize(value)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.serialize failed")
		return err
	}

	if err := im.cache.Set(c, im.getKey(key), data, im.ttl); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if err := im.cache.Del(c, im.getKey(key)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("im.cache.Del failed")
		return err
	}

	return nil
}

func (im *impl) getKey(key string) string {
	return keys.RedisKey(im.pfx, key)
}
