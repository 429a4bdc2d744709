package repository

import (
	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/watchlist"
	"github.com/bidhaus/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) watchlist.Repo {
	return &impl{q}
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...watchlist.FindAllOptions) ([]*watchlist.Watch, error) {
	opts, err := watchlist.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("watchlist.GetFindAllOptions failed")
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

	res := []*watchlist.Watch{}
	if err := im.q.Search(c, domain.TableWatchlist, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...watchlist.FindAllOptions) (int, error) {
	opts, err := watchlist.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("watchlist.GetFindAllOptions failed")
		return 0, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableWatchlist, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return count, nil
}

func (im *impl) Create(c ctx.Ctx, value watchlist.Watch) error {
	if err := im.q.Insert(c, domain.TableWatchlist, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, optFns ...watchlist.FindAllOptions) error {
	opts, err := watchlist.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("watchlist.GetFindAllOptions failed")
		return err
	}

	slt, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		return err
	}

	if err := im.q.Remove(c, domain.TableWatchlist, slt); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}

	return nil
}
