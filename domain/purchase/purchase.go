package purchase

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bidhaus/goapi/base/ctx"
	"github.com/bidhaus/goapi/domain"
	"github.com/bidhaus/goapi/domain/lot"
)

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusRejected       Status = "rejected"
)

type Purchase struct {
	ObjectId   primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	PurchaseId string             `json:"purchaseId" bson:"purchaseId"`
	AuctionId  string             `json:"auctionId" bson:"auctionId"`
	LotNumber  int                `json:"lotNumber" bson:"lotNumber"`
	Buyer      domain.UserId      `json:"buyer" bson:"buyer"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	UnitPrice  domain.Cents       `json:"unitPrice" bson:"unitPrice"`
	Status     Status             `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type findAllOptions struct {
	Offset     *int32         `bson:"-"`
	Limit      *int32         `bson:"-"`
	PurchaseId *string        `bson:"purchaseId"`
	AuctionId  *string        `bson:"auctionId"`
	LotNumber  *int           `bson:"lotNumber"`
	Buyer      *domain.UserId `bson:"buyer"`
	Status     *Status        `bson:"status"`
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

func WithPurchaseId(purchaseId string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.PurchaseId = &purchaseId
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

func WithBuyer(buyer domain.UserId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func WithStatus(status Status) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Status = &status
		return nil
	}
}

// BuyNowResult carries the created purchase and the lot state right after
// the reservation, so availability shown to the buyer is the server's.
type BuyNowResult struct {
	Purchase *Purchase `json:"purchase"`
	Lot      *lot.Lot  `json:"lot"`
}

type Repo interface {
	Create(c ctx.Ctx, value *Purchase) error
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Purchase, error)
	FindOne(c ctx.Ctx, purchaseId string) (*Purchase, error)

	// Settle flips the status from from to to in one guarded update, so
	// concurrent settles race on the selector and exactly one wins. A miss
	// is domain.ErrStaleState when the purchase exists in another status,
	// domain.ErrNotFound when it does not exist at all.
	Settle(c ctx.Ctx, purchaseId string, from, to Status) (*Purchase, error)
}

type UseCase interface {
	// BuyNow reserves qty units atomically. Either the whole quantity is
	// reserved and a pending_payment purchase exists, or nothing changed
	// and domain.ErrInsufficientQuantity carries the fresh lot state.
	BuyNow(c ctx.Ctx, id lot.Id, buyer domain.UserId, qty int) (*BuyNowResult, error)

	// Confirm settles a pending purchase after payment. Only the buyer may
	// settle, a foreign purchase reads as domain.ErrNotFound.
	Confirm(c ctx.Ctx, purchaseId string, caller domain.UserId) error

	// Reject cancels a pending purchase and releases its quantity. Only
	// the buyer may settle, a foreign purchase reads as domain.ErrNotFound.
	Reject(c ctx.Ctx, purchaseId string, caller domain.UserId) error

	ListByBuyer(c ctx.Ctx, buyer domain.UserId, offset, limit int32) ([]*Purchase, error)
}
