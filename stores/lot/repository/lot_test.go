package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
)

type makeQuerySuite struct {
	suite.Suite
}

func TestMakeQuerySuite(t *testing.T) {
	suite.Run(t, new(makeQuerySuite))
}

func (s *makeQuerySuite) TestDefaults() {
	qry, sort, offset, limit, err := makeQuery()
	s.NoError(err)
	s.Equal(bson.M{}, qry)
	s.Equal("endDate", sort)
	s.Equal(0, offset)
	s.Equal(0, limit)
}

func (s *makeQuerySuite) TestFilters() {
	min := domain.Cents(1000)
	max := domain.Cents(50000)

	qry, _, offset, limit, err := makeQuery(
		lot.WithAuctionId("fall-2023"),
		lot.WithCategory("art"),
		lot.WithCondition("used"),
		lot.WithPriceRange(&min, &max),
		lot.WithPagination(20, 10),
	)
	s.NoError(err)
	s.Equal(bson.M{
		"auctionId":    "fall-2023",
		"category":     "art",
		"condition":    "used",
		"currentPrice": bson.M{"$gte": min, "$lte": max},
	}, qry)
	s.Equal(20, offset)
	s.Equal(10, limit)
}

func (s *makeQuerySuite) TestOpenEndedPriceRange() {
	min := domain.Cents(1000)

	qry, _, _, _, err := makeQuery(lot.WithPriceRange(&min, nil))
	s.NoError(err)
	s.Equal(bson.M{"currentPrice": bson.M{"$gte": min}}, qry)
}

func (s *makeQuerySuite) TestSortWhitelist() {
	cases := []struct {
		sortBy lot.SortBy
		want   string
	}{
		{lot.SortByEndDate, "endDate"},
		{lot.SortByCurrentPrice, "currentPrice"},
		{lot.SortByBidCount, "-bidCount"},
		{lot.SortByNewest, "-createdAt"},
	}

	for _, c := range cases {
		_, sort, _, _, err := makeQuery(lot.WithSort(c.sortBy))
		s.NoError(err)
		s.Equal(c.want, sort)
	}

	_, _, _, _, err := makeQuery(lot.WithSort(lot.SortBy("seller_name")))
	s.Equal(domain.ErrBadParamInput, err)
}
