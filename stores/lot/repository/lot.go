package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/base/database/mongoclient"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
	"github.com/bidhaus/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) lot.Repo {
	return &impl{q}
}

func makeQuery(opts ...lot.FindAllOptions) (bson.M, string, int, int, error) {
	res, err := lot.GetFindAllOptions(opts...)
	if err != nil {
		return nil, "", 0, 0, err
	}

	offset := 0
	limit := 0

	if res.Offset != nil {
		offset = int(*res.Offset)
	}

	if res.Limit != nil {
		limit = int(*res.Limit)
	}

	qry, err := mongoclient.MakeBsonM(res)
	if err != nil {
		return nil, "", 0, 0, err
	}

	priceRange := bson.M{}
	if res.MinPrice != nil {
		priceRange["$gte"] = *res.MinPrice
	}
	if res.MaxPrice != nil {
		priceRange["$lte"] = *res.MaxPrice
	}
	if len(priceRange) > 0 {
		qry["currentPrice"] = priceRange
	}

	sort := "endDate"
	if res.SortBy != nil {
		switch *res.SortBy {
		case lot.SortByEndDate:
			sort = "endDate"
		case lot.SortByCurrentPrice:
			sort = "currentPrice"
		case lot.SortByBidCount:
			sort = "-bidCount"
		case lot.SortByNewest:
			sort = "-createdAt"
		default:
			return nil, "", 0, 0, domain.ErrBadParamInput
		}
	}

	return qry, sort, offset, limit, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...lot.FindAllOptions) ([]*lot.Lot, error) {
	qry, sort, offset, limit, err := makeQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return nil, err
	}

	res := []*lot.Lot{}
	if err := im.q.Search(c, domain.TableLots, offset, limit, sort, qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, opts ...lot.FindAllOptions) (int, error) {
	qry, _, _, _, err := makeQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableLots, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return count, nil
}

func (im *impl) FindOne(c ctx.Ctx, id lot.Id) (*lot.Lot, error) {
	res := &lot.Lot{}
	if err := im.q.FindOne(c, domain.TableLots, id, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, value *lot.Lot) error {
	if err := im.q.Upsert(c, domain.TableLots, value.ToId(), value); err != nil {
		c.WithField("err", err).WithField("id", value.ToId()).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, id lot.Id, value lot.PatchableLot) error {
	if err := im.q.Patch(c, domain.TableLots, id, value); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *impl) AcceptBid(c ctx.Ctx, id lot.Id, amount domain.Cents, at time.Time, newEndDate *time.Time) (*lot.Lot, error) {
	// conditions ride in the selector, so acceptance is one atomic
	// compare-and-set and concurrent bids race on the server
	selector := bson.M{
		"auctionId":    id.AuctionId,
		"lotNumber":    id.LotNumber,
		"endDate":      bson.M{"$gt": at},
		"currentPrice": bson.M{"$lt": amount},
	}

	set := bson.M{
		"currentPrice": amount,
		"updatedAt":    at,
	}
	if newEndDate != nil {
		set["endDate"] = *newEndDate
	}
	update := bson.M{
		"$set": set,
		"$inc": bson.M{"bidCount": 1},
	}

	res := &lot.Lot{}
	err := im.q.FindOneAndPatch(c, domain.TableLots, selector, update, res)
	if err == nil {
		return res, nil
	}
	if err != query.ErrNotFound {
		c.WithField("err", err).WithField("id", id).Error("q.FindOneAndPatch failed")
		return nil, err
	}

	// selector missed, figure out which condition lost
	cur, ferr := im.FindOne(c, id)
	if ferr != nil {
		return nil, ferr
	}
	if cur.HasEnded(at) {
		return cur, domain.ErrAuctionEnded
	}
	return cur, domain.ErrBidTooLow
}

func (im *impl) ReserveQuantity(c ctx.Ctx, id lot.Id, qty int) (*lot.Lot, error) {
	selector := bson.M{
		"auctionId":         id.AuctionId,
		"lotNumber":         id.LotNumber,
		"availableQuantity": bson.M{"$gte": qty},
	}
	update := bson.M{
		"$inc": bson.M{"availableQuantity": -qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	res := &lot.Lot{}
	err := im.q.FindOneAndPatch(c, domain.TableLots, selector, update, res)
	if err == nil {
		return res, nil
	}
	if err != query.ErrNotFound {
		c.WithField("err", err).WithField("id", id).Error("q.FindOneAndPatch failed")
		return nil, err
	}

	cur, ferr := im.FindOne(c, id)
	if ferr != nil {
		return nil, ferr
	}
	return cur, domain.ErrInsufficientQuantity
}

func (im *impl) ReleaseQuantity(c ctx.Ctx, id lot.Id, qty int) (*lot.Lot, error) {
	// callers only release what they reserved, so the total cap holds
	update := bson.M{
		"$inc": bson.M{"availableQuantity": qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	res := &lot.Lot{}
	if err := im.q.FindOneAndPatch(c, domain.TableLots, bson.M{"auctionId": id.AuctionId, "lotNumber": id.LotNumber}, update, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOneAndPatch failed")
		return nil, err
	}
	return res, nil
}
