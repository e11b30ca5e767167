// AngelaMos | 2026
// dto.go

package order

import (
	"time"

	"github.com/primehaven/realty-api/internal/listing"
)

type OrderResponse struct {
	ID              string    `json:"id"`
	Buyer           string    `json:"buyer"`
	Listing         string    `json:"listing"`
	PriceAtPurchase float64   `json:"priceAtPurchase"`
	CreatedAt       time.Time `json:"createdAt"`
}

type BuyerOrderResponse struct {
	ID              string                  `json:"id"`
	Buyer           string                  `json:"buyer"`
	Listing         listing.ListingResponse `json:"listing"`
	PriceAtPurchase float64                 `json:"priceAtPurchase"`
	CreatedAt       time.Time               `json:"createdAt"`
}

type OrderEnvelope struct {
	Order OrderResponse `json:"order"`
}

type OrdersEnvelope struct {
	Orders []BuyerOrderResponse `json:"orders"`
}

func ToOrderResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		Buyer:           o.BuyerID,
		Listing:         o.ListingID,
		PriceAtPurchase: o.PriceAtPurchase,
		CreatedAt:       o.CreatedAt,
	}
}

func ToBuyerOrderResponseList(orders []BuyerOrder) []BuyerOrderResponse {
	responses := make([]BuyerOrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		responses = append(responses, BuyerOrderResponse{
			ID:              o.ID,
			Buyer:           o.BuyerID,
			Listing:         listing.ToListingResponse(&o.Listing),
			PriceAtPurchase: o.PriceAtPurchase,
			CreatedAt:       o.CreatedAt,
		})
	}
	return responses
}
