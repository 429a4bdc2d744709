package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/fee"
)

// fallbackSchedule prices estimates when the configured schedule is absent
// or cannot resolve. Rates here lag the configured ones on purpose, the
// flagged breakdown is display only.
var fallbackSchedule = fee.Schedule{
	PremiumRate: decimal.NewFromFloat(0.05),
	TaxRates: map[string]decimal.Decimal{
		"QC": decimal.NewFromFloat(0.14975),
		"ON": decimal.NewFromFloat(0.13),
		"BC": decimal.NewFromFloat(0.12),
		"AB": decimal.NewFromFloat(0.05),
	},
	DefaultRegion: "QC",
}

type FeeUseCaseCfg struct {
	Schedule *fee.Schedule
}

type impl struct {
	schedule *fee.Schedule
}

func New(cfg *FeeUseCaseCfg) fee.Calculator {
	return &impl{
		schedule: cfg.Schedule,
	}
}

// MakeSchedule builds a schedule from config scalars.
func MakeSchedule(premiumRate float64, taxRates map[string]float64, defaultRegion string) *fee.Schedule {
	rates := map[string]decimal.Decimal{}
	for region, rate := range taxRates {
		rates[region] = decimal.NewFromFloat(rate)
	}
	return &fee.Schedule{
		PremiumRate:   decimal.NewFromFloat(premiumRate),
		TaxRates:      rates,
		DefaultRegion: defaultRegion,
	}
}

func (im *impl) BuyerCost(c ctx.Ctx, hammer domain.Cents, region string, sellerIsBusiness bool) (*fee.Breakdown, error) {
	if im.schedule == nil {
		return im.EstimatedBuyerCost(c, hammer, region, sellerIsBusiness)
	}
	return compute(c, im.schedule, hammer, region, sellerIsBusiness, false)
}

func (im *impl) EstimatedBuyerCost(c ctx.Ctx, hammer domain.Cents, region string, sellerIsBusiness bool) (*fee.Breakdown, error) {
	return compute(c, &fallbackSchedule, hammer, region, sellerIsBusiness, true)
}

func compute(c ctx.Ctx, schedule *fee.Schedule, hammer domain.Cents, region string, sellerIsBusiness bool, estimate bool) (*fee.Breakdown, error) {
	if hammer < 0 {
		return nil, domain.ErrBadParamInput
	}

	if region == "" {
		region = schedule.DefaultRegion
	}

	taxRate, err := schedule.TaxRate(region)
	if err != nil {
		c.WithField("region", region).Warn("unknown tax region")
		return nil, err
	}

	b := fee.Compute(hammer, schedule.PremiumRate, taxRate, sellerIsBusiness)
	b.Region = region
	b.Estimate = estimate

	return &b, nil
}
