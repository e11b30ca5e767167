// AngelaMos | 2026
// entity.go

package order

import (
	"time"

	"github.com/primehaven/realty-api/internal/listing"
)

// Order is an immutable purchase record. PriceAtPurchase is snapshotted when
// the listing flips to sold and is never recomputed afterwards.
type Order struct {
	ID              string    `db:"id"`
	BuyerID         string    `db:"buyer_id"`
	ListingID       string    `db:"listing_id"`
	PriceAtPurchase float64   `db:"price_at_purchase"`
	CreatedAt       time.Time `db:"created_at"`
}

// BuyerOrder is an order joined with its listing for the buyer's history.
type BuyerOrder struct {
	Order
	Listing listing.Listing `db:"listing"`
}
