package usecase

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain/lot"
)

type LotUseCaseCfg struct {
	LotRepo lot.Repo
}

type impl struct {
	lotRepo lot.Repo
}

func New(cfg *LotUseCaseCfg) lot.UseCase {
	return &impl{
		lotRepo: cfg.LotRepo,
	}
}

func (im *impl) Search(c ctx.Ctx, opts ...lot.FindAllOptions) (*lot.SearchResult, error) {
	items, err := im.lotRepo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("lotRepo.FindAll failed")
		return nil, err
	}

	total, err := im.lotRepo.Count(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("lotRepo.Count failed")
		return nil, err
	}

	parsed, err := lot.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := 0
	if parsed.Offset != nil {
		offset = int(*parsed.Offset)
	}

	return &lot.SearchResult{
		Items: items,
		Total: total,
		// derived from the total, a final full page reports false
		HasMore: offset+len(items) < total,
	}, nil
}

func (im *impl) FindOne(c ctx.Ctx, id lot.Id) (*lot.Lot, error) {
	return im.lotRepo.FindOne(c, id)
}

func (im *impl) Upsert(c ctx.Ctx, value *lot.Lot) error {
	return im.lotRepo.Upsert(c, value)
}
