package fee

import (
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

// Schedule is the rate table used to price buyer cost. The authoritative
// schedule comes from config, the static fallback is compiled in and every
// breakdown computed from it is flagged as an estimate.
type Schedule struct {
	// PremiumRate is the buyer's premium as a fraction, e.g. 0.05
	PremiumRate decimal.Decimal
	// TaxRates maps region code to sales tax fraction, e.g. "QC": 0.14975
	TaxRates      map[string]decimal.Decimal
	DefaultRegion string
}

// TaxRate resolves the tax rate for region, falling back to the default
// region when region is empty. Unknown regions are an error rather than a
// silent zero rate.
func (s *Schedule) TaxRate(region string) (decimal.Decimal, error) {
	if region == "" {
		region = s.DefaultRegion
	}
	rate, ok := s.TaxRates[region]
	if !ok {
		return decimal.Decimal{}, domain.ErrUnknownRegion
	}
	return rate, nil
}

// Breakdown is the full buyer cost for a hammer price. Each line is rounded
// to the cent before summing, so the lines always add up to the total the
// buyer sees.
type Breakdown struct {
	Hammer           domain.Cents `json:"hammer"`
	Premium          domain.Cents `json:"premium"`
	TaxOnHammer      domain.Cents `json:"taxOnHammer"`
	TaxOnPremium     domain.Cents `json:"taxOnPremium"`
	Total            domain.Cents `json:"total"`
	TaxSavings       domain.Cents `json:"taxSavings"`
	SellerIsBusiness bool         `json:"sellerIsBusiness"`
	Region           string       `json:"region"`
	// Estimate marks breakdowns priced from the fallback schedule.
	// Checkout never submits on an estimate.
	Estimate bool `json:"estimate"`
}

// Compute prices the buyer cost for a hammer amount. Business sellers charge
// tax on the hammer, individual sellers don't and the skipped amount is
// reported as TaxSavings. The buyer's premium is taxed in both cases.
func Compute(hammer domain.Cents, premiumRate, taxRate decimal.Decimal, sellerIsBusiness bool) Breakdown {
	h := hammer.Decimal()

	premium := domain.CentsFromDecimal(h.Mul(premiumRate))
	taxOnHammer := domain.CentsFromDecimal(h.Mul(taxRate))
	taxOnPremium := domain.CentsFromDecimal(premium.Decimal().Mul(taxRate))

	b := Breakdown{
		Hammer:           hammer,
		Premium:          premium,
		TaxOnPremium:     taxOnPremium,
		SellerIsBusiness: sellerIsBusiness,
	}

	if sellerIsBusiness {
		b.TaxOnHammer = taxOnHammer
	} else {
		b.TaxSavings = taxOnHammer
	}

	b.Total = b.Hammer + b.Premium + b.TaxOnHammer + b.TaxOnPremium

	return b
}

// Calculator prices buyer cost against the configured rate schedule.
type Calculator interface {
	// BuyerCost returns the authoritative breakdown for the region.
	BuyerCost(c ctx.Ctx, hammer domain.Cents, region string, sellerIsBusiness bool) (*Breakdown, error)

	// EstimatedBuyerCost prices from the static fallback schedule and flags
	// the result, for display while the authoritative rates are unreachable.
	EstimatedBuyerCost(c ctx.Ctx, hammer domain.Cents, region string, sellerIsBusiness bool) (*Breakdown, error)
}
