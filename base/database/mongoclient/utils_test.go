package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type id struct {
		AuctionId string `bson:"auctionId"`
		LotNumber int    `bson:"lotNumber"`
	}

	m, err := MakeBsonM(id{AuctionId: "a-1", LotNumber: 3})
	assert.NoError(t, err)
	assert.Equal(t, bson.M{"auctionId": "a-1", "lotNumber": 3}, m)
}

func TestMakeBsonMOmitEmpty(t *testing.T) {
	type patchable struct {
		CurrentPrice *float64 `bson:"currentPrice,omitempty"`
		BidCount     *int     `bson:"bidCount,omitempty"`
	}

	m, err := MakeBsonM(patchable{CurrentPrice: ptr.Float64(120.5)})
	assert.NoError(t, err)
	assert.Equal(t, bson.M{"currentPrice": 120.5}, m)
}
