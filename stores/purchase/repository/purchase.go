package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/purchase"
	"github.com/bidhaus/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) purchase.Repo {
	return &impl{q}
}

func (im *impl) Create(c ctx.Ctx, value *purchase.Purchase) error {
	if err := im.q.Insert(c, domain.TablePurchases, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...purchase.FindAllOptions) ([]*purchase.Purchase, error) {
	opts, err := purchase.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("purchase.GetFindAllOptions failed")
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

	res := []*purchase.Purchase{}
	if err := im.q.Search(c, domain.TablePurchases, offset, limit, "-createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, purchaseId string) (*purchase.Purchase, error) {
	res := &purchase.Purchase{}
	if err := im.q.FindOne(c, domain.TablePurchases, bson.M{"purchaseId": purchaseId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("purchaseId", purchaseId).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Settle(c ctx.Ctx, purchaseId string, from, to purchase.Status) (*purchase.Purchase, error) {
	selector := bson.M{
		"purchaseId": purchaseId,
		"status":     from,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    to,
			"updatedAt": time.Now(),
		},
	}

	res := &purchase.Purchase{}
	err := im.q.FindOneAndPatch(c, domain.TablePurchases, selector, update, res)
	if err == nil {
		return res, nil
	}
	if err != query.ErrNotFound {
		c.WithField("err", err).WithField("purchaseId", purchaseId).Error("q.FindOneAndPatch failed")
		return nil, err
	}

	// selector missed, figure out whether the purchase is gone or already
	// settled by someone else
	if _, ferr := im.FindOne(c, purchaseId); ferr != nil {
		return nil, ferr
	}
	return nil, domain.ErrStaleState
}
