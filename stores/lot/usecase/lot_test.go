package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/lot/mocks"
)

type searchSuite struct {
	suite.Suite

	lotRepo *mocks.Repo
	im      lot.UseCase
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(searchSuite))
}

func (s *searchSuite) SetupTest() {
	s.lotRepo = &mocks.Repo{}
	s.im = New(&LotUseCaseCfg{LotRepo: s.lotRepo})
}

func makeLots(n int) []*lot.Lot {
	res := make([]*lot.Lot, n)
	for i := range res {
		res[i] = &lot.Lot{AuctionId: "a", LotNumber: i + 1}
	}
	return res
}

func (s *searchSuite) TestHasMoreFromTotal() {
	c := ctx.Background()

	// page 1 of 25 items, 10 per page
	s.lotRepo.On("FindAll", mock.Anything, mock.Anything).Return(makeLots(10), nil).Once()
	s.lotRepo.On("Count", mock.Anything, mock.Anything).Return(25, nil).Once()

	res, err := s.im.Search(c, lot.WithPagination(0, 10))
	s.NoError(err)
	s.Len(res.Items, 10)
	s.Equal(25, res.Total)
	s.True(res.HasMore)
}

func (s *searchSuite) TestLastFullPageHasNoMore() {
	c := ctx.Background()

	// final page is exactly full, has_more must still be false
	s.lotRepo.On("FindAll", mock.Anything, mock.Anything).Return(makeLots(10), nil).Once()
	s.lotRepo.On("Count", mock.Anything, mock.Anything).Return(20, nil).Once()

	res, err := s.im.Search(c, lot.WithPagination(10, 10))
	s.NoError(err)
	s.Len(res.Items, 10)
	s.False(res.HasMore)
}

func (s *searchSuite) TestEmptyResult() {
	c := ctx.Background()

	s.lotRepo.On("FindAll", mock.Anything).Return([]*lot.Lot{}, nil).Once()
	s.lotRepo.On("Count", mock.Anything).Return(0, nil).Once()

	res, err := s.im.Search(c)
	s.NoError(err)
	s.Empty(res.Items)
	s.Equal(0, res.Total)
	s.False(res.HasMore)
}
