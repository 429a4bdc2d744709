package fee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bidhaus/goapi/domain"
)

var (
	premiumRate = decimal.RequireFromString("0.05")
	taxRate     = decimal.RequireFromString("0.14975")
)

func TestComputeBusinessSeller(t *testing.T) {
	b := Compute(domain.Cents(10000), premiumRate, taxRate, true)

	assert.Equal(t, domain.Cents(10000), b.Hammer)
	assert.Equal(t, domain.Cents(500), b.Premium)
	// 100.00 * 0.14975 = 14.975 rounds half up to 14.98
	assert.Equal(t, domain.Cents(1498), b.TaxOnHammer)
	// 5.00 * 0.14975 = 0.74875 rounds half up to 0.75
	assert.Equal(t, domain.Cents(75), b.TaxOnPremium)
	assert.Equal(t, domain.Cents(12073), b.Total)
	assert.Equal(t, domain.Cents(0), b.TaxSavings)
	assert.True(t, b.SellerIsBusiness)
}

func TestComputeIndividualSeller(t *testing.T) {
	b := Compute(domain.Cents(10000), premiumRate, taxRate, false)

	assert.Equal(t, domain.Cents(10000), b.Hammer)
	assert.Equal(t, domain.Cents(500), b.Premium)
	assert.Equal(t, domain.Cents(0), b.TaxOnHammer)
	assert.Equal(t, domain.Cents(75), b.TaxOnPremium)
	assert.Equal(t, domain.Cents(10575), b.Total)
	// the tax skipped on the hammer is surfaced to the buyer
	assert.Equal(t, domain.Cents(1498), b.TaxSavings)
	assert.False(t, b.SellerIsBusiness)
}

// the displayed lines must always sum to the displayed total
func TestComputeTotalIsSelfConsistent(t *testing.T) {
	hammers := []domain.Cents{1, 99, 333, 10000, 123456, 99999999}

	for _, h := range hammers {
		for _, business := range []bool{true, false} {
			b := Compute(h, premiumRate, taxRate, business)
			assert.Equal(t, b.Total, b.Hammer+b.Premium+b.TaxOnHammer+b.TaxOnPremium)
		}
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	a := Compute(domain.Cents(123456), premiumRate, taxRate, true)
	b := Compute(domain.Cents(123456), premiumRate, taxRate, true)
	assert.Equal(t, a, b)
}

func TestScheduleTaxRate(t *testing.T) {
	s := &Schedule{
		PremiumRate: premiumRate,
		TaxRates: map[string]decimal.Decimal{
			"QC": taxRate,
			"ON": decimal.RequireFromString("0.13"),
		},
		DefaultRegion: "QC",
	}

	rate, err := s.TaxRate("ON")
	assert.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.13")))

	// empty region falls back to the default
	rate, err = s.TaxRate("")
	assert.NoError(t, err)
	assert.True(t, rate.Equal(taxRate))

	// unknown region is an error, never a zero rate
	_, err = s.TaxRate("XX")
	assert.Equal(t, domain.ErrUnknownRegion, err)
}
