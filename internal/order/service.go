// AngelaMos | 2026
// service.go

package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/primehaven/realty-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Purchase buys a listing for the given buyer. The store performs the
// available→sold transition atomically, so concurrent purchases of the same
// listing resolve to exactly one order; losers surface core.ErrConflict.
func (s *Service) Purchase(
	ctx context.Context,
	buyerID, listingID string,
) (*Order, error) {
	if _, err := uuid.Parse(listingID); err != nil {
		return nil, fmt.Errorf("purchase: %w", core.ErrNotFound)
	}

	order := &Order{
		ID:        uuid.New().String(),
		BuyerID:   buyerID,
		ListingID: listingID,
	}

	if err := s.repo.Purchase(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Service) MyOrders(
	ctx context.Context,
	buyerID string,
) ([]BuyerOrder, error) {
	return s.repo.ListByBuyer(ctx, buyerID)
}

type Stats struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}

	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{Orders: count, Revenue: revenue}, nil
}
