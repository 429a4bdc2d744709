package paging

import (
	"errors"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/service/redis"
)

var (
	ErrBadCursor    = errors.New("bad cursor")
	ErrGetLatestKey = errors.New("failed to get latest snapshot cursor")
	// ErrBadContainer indicates container is not a pointer to slice
	ErrBadContainer = errors.New("bad container")
)

/*
	Snapshot layout in redis:
	- cursor:
		"<createTs>:<totalCount>:<offset>" base64 encoded
	- latest key:
		"feedPaging:la:<keyPfx>:<key>" holds the first cursor of the newest snapshot
	- lock key:
		"feedPaging:lock:<keyPfx>:<key>"
	- shard key:
		"feedPaging:<keyPfx>:<key>:<createTs>:<shardNum>"

	Timestamps are stored in nanoseconds.
*/

// A Getter loads the whole feed for a key.
// `wholeList` should be a slice of objects or object pointers,
// i.e. []lot.Lot or []*lot.Lot.
type Getter func(ctx ctx.Ctx, key string) (wholeList interface{}, err error)

type PagingConfig struct {
	RedisCache redis.Service
	KeyPfx     string
	Getter     Getter
	// RenewDuration determines the time after which a snapshot is rebuilt
	RenewDuration time.Duration
	// CacheDuration is the ttl of all snapshots
	CacheDuration time.Duration

	ShardSize int

	// Default 10s. Snapshot build lock ttl.
	GetterTimeout time.Duration
}

// Service pages over point-in-time snapshots of a feed, so a client walking
// pages keeps seeing the list as it was when it started.
type Service interface {
	// Get gets a page of the feed. For the first request, cursor is an empty
	// string. `container` should be a pointer to slice of object or object
	// pointer, i.e. *[]lot.Lot or *[]*lot.Lot.
	Get(
		context ctx.Ctx, key string, cursor string, size int, container interface{},
	) (nextCursor string, totalCount int, err error)
}
