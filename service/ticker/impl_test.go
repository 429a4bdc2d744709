package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
)

type testsuite struct {
	suite.Suite
	im Service
}

func (ts *testsuite) SetupTest() {
	ts.im = New(10 * time.Millisecond)
}

func (ts *testsuite) TearDownTest() {
	ts.im.Close()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestBroadcast() {
	c := ctx.Background()

	ch1, cancel1 := ts.im.Subscribe(c)
	defer cancel1()
	ch2, cancel2 := ts.im.Subscribe(c)
	defer cancel2()

	select {
	case <-ch1:
	case <-time.After(time.Second):
		ts.Fail("first subscriber did not receive a tick")
	}

	select {
	case <-ch2:
	case <-time.After(time.Second):
		ts.Fail("second subscriber did not receive a tick")
	}
}

func (ts *testsuite) TestCancelClosesChannel() {
	c := ctx.Background()

	ch, cancel := ts.im.Subscribe(c)
	cancel()
	// cancel twice must not panic
	cancel()

	select {
	case _, ok := <-ch:
		ts.False(ok)
	case <-time.After(time.Second):
		ts.Fail("channel not closed after cancel")
	}
}

func (ts *testsuite) TestContextCancelUnsubscribes() {
	c, cancelCtx := ctx.WithCancel(ctx.Background())

	ch, cancel := ts.im.Subscribe(c)
	defer cancel()

	cancelCtx()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			ts.Fail("channel not closed after context cancel")
			return
		}
	}
}

func (ts *testsuite) TestClose() {
	c := ctx.Background()

	ch, cancel := ts.im.Subscribe(c)
	defer cancel()

	ts.im.Close()
	// close twice must not panic
	ts.im.Close()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			ts.Fail("channel not closed after Close")
			return
		}
	}
}
