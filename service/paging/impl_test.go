package paging

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PagingSuite struct {
	suite.Suite
}

func TestPagingSuite(t *testing.T) {
	suite.Run(t, new(PagingSuite))
}

func (s *PagingSuite) TestEncodeCursor() {
	cases := []struct {
		name string
		data cursorStruct
		want string
	}{
		{
			name: "case 1",
			data: cursorStruct{
				createTs:   123,
				totalCount: 1000,
				offset:     456,
			},
			want: "123:1000:456",
		},
		{
			name: "case 2",
			data: cursorStruct{
				createTs:   234,
				totalCount: 2000,
				offset:     789,
			},
			want: "234:2000:789",
		},
	}

	for _, c := range cases {
		base64String := encodeCursor(c.data)
		data, err := base64.StdEncoding.DecodeString(base64String)
		s.Nil(err)
		s.Equal(c.want, string(data))
	}
}

func (s *PagingSuite) TestDecodeCursor() {
	base64String := base64.StdEncoding.EncodeToString([]byte("123:1000:456"))
	cur, err := decodeCursor(base64String)
	s.Nil(err)
	s.Equal(&cursorStruct{
		createTs:   123,
		totalCount: 1000,
		offset:     456,
	}, cur)

	// bad cursor
	base64String = base64.StdEncoding.EncodeToString([]byte("123:ABC:456"))
	cur, err = decodeCursor(base64String)
	s.NotNil(err)
	s.Nil(cur)

	// wrong number of parts
	base64String = base64.StdEncoding.EncodeToString([]byte("123:456"))
	_, err = decodeCursor(base64String)
	s.Equal(errCursorLengthNotCorrect, err)
}

func (s *PagingSuite) TestGetCoveredShard() {
	cases := []struct {
		name      string
		shardSize int
		offset    int
		size      int
		wantFrom  int
		wantTo    int
	}{
		{name: "empty", shardSize: 100, offset: 0, size: 0, wantFrom: 0, wantTo: 0},
		{name: "first shard", shardSize: 100, offset: 0, size: 10, wantFrom: 0, wantTo: 1},
		{name: "exact shard", shardSize: 100, offset: 0, size: 100, wantFrom: 0, wantTo: 1},
		{name: "crossing shards", shardSize: 100, offset: 50, size: 100, wantFrom: 0, wantTo: 2},
		{name: "later shard", shardSize: 100, offset: 250, size: 10, wantFrom: 2, wantTo: 3},
	}

	for _, c := range cases {
		from, to := getCoveredShard(c.shardSize, c.offset, c.size)
		s.Equal(c.wantFrom, from, c.name)
		s.Equal(c.wantTo, to, c.name)
	}
}

func (s *PagingSuite) TestIsSlicePtr() {
	type D struct{ Value int }

	s.False(isSlicePtr(nil))
	s.False(isSlicePtr([]D{}))
	s.False(isSlicePtr(&D{}))
	s.True(isSlicePtr(&[]D{}))
	s.True(isSlicePtr(&[]*D{}))
}
