package domain

// UserId identifies a buyer or seller account. Account management lives in
// an external identity service, the api only carries the id around.
type UserId string

func (u UserId) IsEmpty() bool {
	return len(u) == 0
}

// Table is the name of a mongo collection
type Table string

const (
	TableLots      Table = "lots"
	TableBids      Table = "bids"
	TablePurchases Table = "purchases"
	TableWatchlist Table = "watchlist"
)
