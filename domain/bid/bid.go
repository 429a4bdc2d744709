package bid

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
)

type Bid struct {
	ObjectId  primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	BidId     string             `json:"bidId" bson:"bidId"`
	AuctionId string             `json:"auctionId" bson:"auctionId"`
	LotNumber int                `json:"lotNumber" bson:"lotNumber"`
	Bidder    domain.UserId      `json:"bidder" bson:"bidder"`
	Amount    domain.Cents       `json:"amount" bson:"amount"`
	// Extended marks the bid that triggered an anti-sniping extension
	Extended  bool      `json:"extended" bson:"extended"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type findAllOptions struct {
	Offset    *int32         `bson:"-"`
	Limit     *int32         `bson:"-"`
	AuctionId *string        `bson:"auctionId"`
	LotNumber *int           `bson:"lotNumber"`
	Bidder    *domain.UserId `bson:"bidder"`
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithLot(id lot.Id) FindAllOptions {
	return func(options *findAllOptions) error {
		options.AuctionId = &id.AuctionId
		options.LotNumber = &id.LotNumber
		return nil
	}
}

func WithBidder(bidder domain.UserId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Bidder = &bidder
		return nil
	}
}

// PlaceResult carries the accepted bid and the lot state after acceptance.
// Callers refresh their display from Lot, never from the submitted amount.
type PlaceResult struct {
	Bid      *Bid     `json:"bid"`
	Lot      *lot.Lot `json:"lot"`
	Extended bool     `json:"extended"`
}

type Repo interface {
	Create(c ctx.Ctx, value *Bid) error
	// FindAll returns bids most recent first
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Bid, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
}

type UseCase interface {
	// Place runs the server side acceptance: the auction must still be
	// running and amount must strictly beat the stored current price at
	// the moment of the update. A concurrent higher bid wins the race and
	// the loser gets domain.ErrBidTooLow with the fresh lot state.
	Place(c ctx.Ctx, id lot.Id, bidder domain.UserId, amount domain.Cents) (*PlaceResult, error)
	History(c ctx.Ctx, id lot.Id, offset, limit int32) ([]*Bid, error)
}
