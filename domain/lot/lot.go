package lot

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
)

type SortBy string

const (
	SortByEndDate      SortBy = "end_date"
	SortByCurrentPrice SortBy = "current_price"
	SortByBidCount     SortBy = "bid_count"
	SortByNewest       SortBy = "newest"
)

// Id identifies a lot inside a multi item listing.
type Id struct {
	AuctionId string `json:"auctionId" bson:"auctionId" param:"auctionId" validate:"required"`
	LotNumber int    `json:"lotNumber" bson:"lotNumber" param:"lotNumber" validate:"gte=1"`
}

type Lot struct {
	ObjectId          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	AuctionId         string             `json:"auctionId" bson:"auctionId"`
	LotNumber         int                `json:"lotNumber" bson:"lotNumber"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	Category          string             `json:"category" bson:"category"`
	Condition         string             `json:"condition" bson:"condition"`
	Images            []string           `json:"images" bson:"images"`
	SellerName        string             `json:"sellerName" bson:"sellerName"`
	SellerIsBusiness  bool               `json:"sellerIsBusiness" bson:"sellerIsBusiness"`
	Region            string             `json:"region" bson:"region"`
	StartPrice        domain.Cents       `json:"startPrice" bson:"startPrice"`
	CurrentPrice      domain.Cents       `json:"currentPrice" bson:"currentPrice"`
	EstimateLow       domain.Cents       `json:"estimateLow" bson:"estimateLow"`
	EstimateHigh      domain.Cents       `json:"estimateHigh" bson:"estimateHigh"`
	BidCount          int                `json:"bidCount" bson:"bidCount"`
	EndDate           time.Time          `json:"endDate" bson:"endDate"`
	BuyNowEnabled     bool               `json:"buyNowEnabled" bson:"buyNowEnabled"`
	BuyNowPrice       domain.Cents       `json:"buyNowPrice" bson:"buyNowPrice"`
	TotalQuantity     int                `json:"totalQuantity" bson:"totalQuantity"`
	AvailableQuantity int                `json:"availableQuantity" bson:"availableQuantity"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (l *Lot) ToId() Id {
	return Id{
		AuctionId: l.AuctionId,
		LotNumber: l.LotNumber,
	}
}

// HasEnded reports whether the auction ended at now. The repository selector
// is the authority, this is for display only.
func (l *Lot) HasEnded(now time.Time) bool {
	return !now.Before(l.EndDate)
}

// BuyNowOpen reports whether buy now can still be offered. A lot can carry
// a buy now price while the option is switched off, the price alone is not
// the switch. Bidding on the remainder stays open even when the purchasable
// quantity hits zero.
func (l *Lot) BuyNowOpen(now time.Time) bool {
	return l.BuyNowEnabled && l.BuyNowPrice > 0 && l.AvailableQuantity > 0 && !l.HasEnded(now)
}

type PatchableLot struct {
	Title             *string       `bson:"title,omitempty"`
	Description       *string       `bson:"description,omitempty"`
	Category          *string       `bson:"category,omitempty"`
	Condition         *string       `bson:"condition,omitempty"`
	CurrentPrice      *domain.Cents `bson:"currentPrice,omitempty"`
	BidCount          *int          `bson:"bidCount,omitempty"`
	EndDate           *time.Time    `bson:"endDate,omitempty"`
	AvailableQuantity *int          `bson:"availableQuantity,omitempty"`
	UpdatedAt         *time.Time    `bson:"updatedAt,omitempty"`
}

type findAllOptions struct {
	SortBy    *SortBy       `bson:"-"`
	Offset    *int32        `bson:"-"`
	Limit     *int32        `bson:"-"`
	AuctionId *string       `bson:"auctionId"`
	Category  *string       `bson:"category"`
	Condition *string       `bson:"condition"`
	MinPrice  *domain.Cents `bson:"-"`
	MaxPrice  *domain.Cents `bson:"-"`
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

func WithSort(sortBy SortBy) FindAllOptions {
	return func(options *findAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithAuctionId(auctionId string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.AuctionId = &auctionId
		return nil
	}
}

func WithCategory(category string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Category = &category
		return nil
	}
}

func WithCondition(condition string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Condition = &condition
		return nil
	}
}

func WithPriceRange(min, max *domain.Cents) FindAllOptions {
	return func(options *findAllOptions) error {
		options.MinPrice = min
		options.MaxPrice = max
		return nil
	}
}

// SearchResult is one browse page. HasMore derives from Total, not from the
// page length, so a final full page reports false.
type SearchResult struct {
	Items   []*Lot `json:"items"`
	Total   int    `json:"total"`
	HasMore bool   `json:"hasMore"`
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Lot, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	FindOne(c ctx.Ctx, id Id) (*Lot, error)
	Upsert(c ctx.Ctx, value *Lot) error
	Patch(c ctx.Ctx, id Id, value PatchableLot) error

	// AcceptBid raises currentPrice to amount and bumps bidCount, only if
	// the auction has not ended at `at` and amount still beats the stored
	// price. newEndDate, when set, applies the anti-sniping extension in
	// the same update. Returns the fresh lot, domain.ErrBidTooLow or
	// domain.ErrAuctionEnded otherwise.
	AcceptBid(c ctx.Ctx, id Id, amount domain.Cents, at time.Time, newEndDate *time.Time) (*Lot, error)

	// ReserveQuantity atomically decrements availableQuantity by qty, only
	// if at least qty is still available. Returns the post-decrement lot,
	// domain.ErrInsufficientQuantity otherwise.
	ReserveQuantity(c ctx.Ctx, id Id, qty int) (*Lot, error)

	// ReleaseQuantity returns qty to availableQuantity, capped by
	// totalQuantity on the caller's side.
	ReleaseQuantity(c ctx.Ctx, id Id, qty int) (*Lot, error)
}

type UseCase interface {
	Search(c ctx.Ctx, opts ...FindAllOptions) (*SearchResult, error)
	FindOne(c ctx.Ctx, id Id) (*Lot, error)
	Upsert(c ctx.Ctx, value *Lot) error
}
