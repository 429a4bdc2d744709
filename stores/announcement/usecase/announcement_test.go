package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/kvstore"
	kvstoreMocks "github.com/bidhaus/goapi/base/kvstore/mocks"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/announcement"
)

var (
	mockCtx = ctx.Background()
	user    = domain.UserId("buyer-1")
)

type announcementSuite struct {
	suite.Suite

	store *kvstoreMocks.Store
	im    announcement.UseCase
}

func TestAnnouncementSuite(t *testing.T) {
	suite.Run(t, new(announcementSuite))
}

func (s *announcementSuite) SetupTest() {
	s.store = &kvstoreMocks.Store{}
	s.im = New(&AnnouncementUseCaseCfg{
		Announcements: []announcement.Announcement{
			{
				Id:       "summer-sale",
				Title:    "Summer sale",
				StartsAt: time.Now().Add(-time.Hour),
			},
			{
				Id:       "expired",
				StartsAt: time.Now().Add(-48 * time.Hour),
				EndsAt:   time.Now().Add(-24 * time.Hour),
			},
			{
				Id:       "upcoming",
				StartsAt: time.Now().Add(24 * time.Hour),
			},
		},
		Store: s.store,
	})
}

func (s *announcementSuite) TestActiveFiltersByWindow() {
	s.store.On("Get", mock.Anything, mock.Anything).Return(nil, kvstore.ErrNotFound).Once()

	res, err := s.im.Active(mockCtx, user)
	s.NoError(err)
	s.Require().Len(res, 1)
	s.Equal("summer-sale", res[0].Id)
}

func (s *announcementSuite) TestActiveForAnonymousSkipsStore() {
	res, err := s.im.Active(mockCtx, "")
	s.NoError(err)
	s.Len(res, 1)

	s.store.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *announcementSuite) TestDismissHidesAnnouncement() {
	s.store.On("Get", mock.Anything, mock.Anything).Return(nil, kvstore.ErrNotFound).Once()
	s.store.On("Set", mock.Anything, mock.Anything, []byte(`{"summer-sale":true}`), dismissalTtl).Return(nil).Once()

	s.NoError(s.im.Dismiss(mockCtx, user, "summer-sale"))

	s.store.On("Get", mock.Anything, mock.Anything).Return([]byte(`{"summer-sale":true}`), nil).Once()

	res, err := s.im.Active(mockCtx, user)
	s.NoError(err)
	s.Len(res, 0)
}

func (s *announcementSuite) TestDismissUnknownId() {
	s.Equal(domain.ErrNotFound, s.im.Dismiss(mockCtx, user, "nope"))
}

func (s *announcementSuite) TestDismissRequiresAuth() {
	s.Equal(domain.ErrAuthRequired, s.im.Dismiss(mockCtx, "", "summer-sale"))
}

func (s *announcementSuite) TestCorruptRecordResets() {
	s.store.On("Get", mock.Anything, mock.Anything).Return([]byte("not json"), nil).Once()

	res, err := s.im.Active(mockCtx, user)
	s.NoError(err)
	s.Len(res, 1)
}
