package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/domain/watchlist"
	watchlistMocks "github.com/bidhaus/goapi/domain/watchlist/mocks"
)

var (
	mockCtx = ctx.Background()
	lotId   = lot.Id{AuctionId: "fall-2023", LotNumber: 7}
	watcher = domain.UserId("buyer-1")
)

type toggleSuite struct {
	suite.Suite

	repo *watchlistMocks.Repo
	im   watchlist.UseCase
}

func TestToggleSuite(t *testing.T) {
	suite.Run(t, new(toggleSuite))
}

func (s *toggleSuite) SetupTest() {
	s.repo = &watchlistMocks.Repo{}
	s.im = New(&WatchlistUseCaseCfg{WatchlistRepo: s.repo})
}

func (s *toggleSuite) TestWatchCommits() {
	// not watched yet, then one watcher after the insert
	s.repo.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Once()
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(w watchlist.Watch) bool {
		return w.Watcher == watcher && w.AuctionId == lotId.AuctionId
	})).Return(nil).Once()
	s.repo.On("Count", mock.Anything, mock.Anything).Return(1, nil).Once()

	res, err := s.im.Toggle(mockCtx, lotId, watcher, true)
	s.NoError(err)
	s.Equal(watchlist.ToggleCommitted, res.State)
	s.True(res.Watched)
	s.Equal(1, res.Count)

	s.repo.AssertExpectations(s.T())
}

func (s *toggleSuite) TestWatchTwiceIsIdempotent() {
	s.repo.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Once()
	s.repo.On("Count", mock.Anything, mock.Anything).Return(1, nil).Once()

	res, err := s.im.Toggle(mockCtx, lotId, watcher, true)
	s.NoError(err)
	s.Equal(watchlist.ToggleCommitted, res.State)

	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *toggleSuite) TestFailedWriteRollsBack() {
	s.repo.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Once()
	s.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrInternalServerError).Once()
	s.repo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Once()

	res, err := s.im.Toggle(mockCtx, lotId, watcher, true)
	s.NoError(err)
	s.Equal(watchlist.ToggleRolledBack, res.State)
	// the mark the client optimistically flipped does not stand
	s.False(res.Watched)
	s.Equal(0, res.Count)
}

func (s *toggleSuite) TestUnwatchMissingIsIdempotent() {
	s.repo.On("Delete", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrNotFound).Once()
	s.repo.On("Count", mock.Anything, mock.Anything).Return(0, nil).Once()

	res, err := s.im.Toggle(mockCtx, lotId, watcher, false)
	s.NoError(err)
	s.Equal(watchlist.ToggleCommitted, res.State)
	s.False(res.Watched)
}

func (s *toggleSuite) TestToggleRequiresAuth() {
	_, err := s.im.Toggle(mockCtx, lotId, "", true)
	s.Equal(domain.ErrAuthRequired, err)
}
