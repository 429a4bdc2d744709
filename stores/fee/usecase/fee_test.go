package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/fee"
)

var mockCtx = ctx.Background()

type calculatorSuite struct {
	suite.Suite

	im fee.Calculator
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(calculatorSuite))
}

func (s *calculatorSuite) SetupTest() {
	s.im = New(&FeeUseCaseCfg{
		Schedule: MakeSchedule(0.05, map[string]float64{
			"QC": 0.14975,
			"ON": 0.13,
		}, "QC"),
	})
}

func (s *calculatorSuite) TestBusinessSeller() {
	b, err := s.im.BuyerCost(mockCtx, 10000, "QC", true)
	s.NoError(err)
	s.Equal(domain.Cents(500), b.Premium)
	s.Equal(domain.Cents(1498), b.TaxOnHammer)
	s.Equal(domain.Cents(75), b.TaxOnPremium)
	s.Equal(domain.Cents(12073), b.Total)
	s.Equal(domain.Cents(0), b.TaxSavings)
	s.False(b.Estimate)
}

func (s *calculatorSuite) TestIndividualSeller() {
	b, err := s.im.BuyerCost(mockCtx, 10000, "QC", false)
	s.NoError(err)
	s.Equal(domain.Cents(10575), b.Total)
	s.Equal(domain.Cents(1498), b.TaxSavings)
	s.Equal(domain.Cents(0), b.TaxOnHammer)
}

func (s *calculatorSuite) TestEmptyRegionUsesDefault() {
	b, err := s.im.BuyerCost(mockCtx, 10000, "", true)
	s.NoError(err)
	s.Equal("QC", b.Region)
	s.Equal(domain.Cents(12073), b.Total)
}

func (s *calculatorSuite) TestUnknownRegion() {
	_, err := s.im.BuyerCost(mockCtx, 10000, "ZZ", true)
	s.Equal(domain.ErrUnknownRegion, err)
}

func (s *calculatorSuite) TestNegativeHammer() {
	_, err := s.im.BuyerCost(mockCtx, -1, "QC", true)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *calculatorSuite) TestEstimateIsFlagged() {
	b, err := s.im.EstimatedBuyerCost(mockCtx, 10000, "QC", true)
	s.NoError(err)
	s.True(b.Estimate)
	s.Equal(domain.Cents(12073), b.Total)
}

func (s *calculatorSuite) TestNoScheduleFallsBackToEstimate() {
	im := New(&FeeUseCaseCfg{})

	b, err := im.BuyerCost(mockCtx, 10000, "QC", true)
	s.NoError(err)
	s.True(b.Estimate)
}
