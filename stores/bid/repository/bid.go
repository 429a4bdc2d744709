package repository

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/bid"
	"github.com/bidhaus/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) bid.Repo {
	return &impl{q}
}

func (im *impl) Create(c ctx.Ctx, value *bid.Bid) error {
	if err := im.q.Insert(c, domain.TableBids, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...bid.FindAllOptions) ([]*bid.Bid, error) {
	opts, err := bid.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("bid.GetFindAllOptions failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := []*bid.Bid{}
	if err := im.q.Search(c, domain.TableBids, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...bid.FindAllOptions) (int, error) {
	opts, err := bid.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("bid.GetFindAllOptions failed")
		return 0, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableBids, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return count, nil
}
