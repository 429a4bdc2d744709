package kvstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
)

type testsuite struct {
	suite.Suite
	store Store
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	ts.store = NewLocal(1)
}

func (ts *testsuite) TestSetGet() {
	c := ctx.Background()
	ts.NoError(ts.store.Set(c, "k", []byte("v"), time.Minute))
	val, err := ts.store.Get(c, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), val)
}

func (ts *testsuite) TestMissingKey() {
	c := ctx.Background()
	_, err := ts.store.Get(c, "absent")
	ts.Equal(ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	c := ctx.Background()
	ts.NoError(ts.store.Set(c, "k", []byte("v"), time.Minute))
	ts.NoError(ts.store.Del(c, "k"))
	_, err := ts.store.Get(c, "k")
	ts.Equal(ErrNotFound, err)
}
