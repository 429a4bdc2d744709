package ticker

import (
	"sync"
	"time"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/metrics"
)

type impl struct {
	mu      sync.Mutex
	subs    map[int64]chan time.Time
	nextId  int64
	closed  bool
	done    chan struct{}
	metrics metrics.Service
}

func New(interval time.Duration) Service {
	im := &impl{
		subs:    map[int64]chan time.Time{},
		done:    make(chan struct{}),
		metrics: metrics.New("ticker"),
	}
	go im.run(interval)
	return im
}

func (im *impl) run(interval time.Duration) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case now := <-tk.C:
			im.broadcast(now)
		case <-im.done:
			return
		}
	}
}

func (im *impl) broadcast(now time.Time) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, ch := range im.subs {
		// slow subscribers drop ticks rather than stall the rest
		select {
		case ch <- now:
		default:
			im.metrics.BumpSum("tick.drop", 1)
		}
	}
}

func (im *impl) Subscribe(c ctx.Ctx) (<-chan time.Time, func()) {
	im.mu.Lock()
	defer im.mu.Unlock()

	ch := make(chan time.Time, 1)
	if im.closed {
		close(ch)
		return ch, func() {}
	}

	id := im.nextId
	im.nextId++
	im.subs[id] = ch

	var (
		once sync.Once
		stop = make(chan struct{})
	)
	cancel := func() {
		once.Do(func() {
			close(stop)
			im.unsubscribe(id)
		})
	}

	go func() {
		select {
		case <-c.Done():
			cancel()
		case <-stop:
		case <-im.done:
		}
	}()

	return ch, cancel
}

func (im *impl) unsubscribe(id int64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if ch, ok := im.subs[id]; ok {
		delete(im.subs, id)
		close(ch)
	}
}

func (im *impl) Close() {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.closed {
		return
	}
	im.closed = true
	close(im.done)

	for id, ch := range im.subs {
		delete(im.subs, id)
		close(ch)
	}
}
