// AngelaMos | 2026
// service_test.go

package order

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehaven/realty-api/internal/core"
	"github.com/primehaven/realty-api/internal/listing"
)

type fakeListing struct {
	status string
	price  float64
}

// fakeRepository mirrors the store's compare-and-set semantics: the
// available→sold flip happens under one lock, so concurrent purchases of the
// same listing admit exactly one winner.
type fakeRepository struct {
	mu       sync.Mutex
	listings map[string]*fakeListing
	orders   []Order
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{listings: make(map[string]*fakeListing)}
}

func (f *fakeRepository) addListing(price float64) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := uuid.New().String()
	f.listings[id] = &fakeListing{
		status: listing.StatusAvailable,
		price:  price,
	}
	return id
}

func (f *fakeRepository) setPrice(id string, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listings[id].price = price
}

func (f *fakeRepository) Purchase(_ context.Context, order *Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.listings[order.ListingID]
	if !ok {
		return fmt.Errorf("purchase: %w", core.ErrNotFound)
	}

	if l.status != listing.StatusAvailable {
		return fmt.Errorf(
			"purchase: listing not available: %w",
			core.ErrConflict,
		)
	}

	l.status = listing.StatusSold
	order.PriceAtPurchase = l.price
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeRepository) ListByBuyer(
	_ context.Context,
	buyerID string,
) ([]BuyerOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := []BuyerOrder{}
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			result = append(result, BuyerOrder{Order: o})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders), nil
}

func (f *fakeRepository) Revenue(_ context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total float64
	for _, o := range f.orders {
		total += o.PriceAtPurchase
	}
	return total, nil
}

func TestService_Purchase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	listingID := repo.addListing(500000)
	buyerID := uuid.New().String()

	order, err := svc.Purchase(ctx, buyerID, listingID)
	require.NoError(t, err)

	assert.Equal(t, buyerID, order.BuyerID)
	assert.Equal(t, listingID, order.ListingID)
	assert.Equal(t, 500000.0, order.PriceAtPurchase)
	assert.NotEmpty(t, order.ID)
}

func TestService_PurchaseUnknownListing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.Purchase(ctx, uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.Purchase(ctx, uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_PurchaseSoldListing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	listingID := repo.addListing(500000)

	_, err := svc.Purchase(ctx, uuid.New().String(), listingID)
	require.NoError(t, err)

	_, err = svc.Purchase(ctx, uuid.New().String(), listingID)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestService_PurchaseConcurrentSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	listingID := repo.addListing(500000)

	const buyers = 25
	errs := make([]error, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Purchase(ctx, uuid.New().String(), listingID)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case assert.ErrorIs(t, err, core.ErrConflict):
			lost++
		}
	}

	assert.Equal(t, 1, won, "exactly one buyer wins")
	assert.Equal(t, buyers-1, lost)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the winner's order is recorded")
}

func TestService_PurchasePriceSnapshotSurvivesEdits(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	listingID := repo.addListing(500000)
	buyerID := uuid.New().String()

	order, err := svc.Purchase(ctx, buyerID, listingID)
	require.NoError(t, err)

	repo.setPrice(listingID, 1)

	orders, err := svc.MyOrders(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, 500000.0, orders[0].PriceAtPurchase)
}

func TestService_MyOrdersEmpty(t *testing.T) {
	svc := NewService(newFakeRepository())

	orders, err := svc.MyOrders(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	first := repo.addListing(300000)
	second := repo.addListing(200000)

	_, err := svc.Purchase(ctx, uuid.New().String(), first)
	require.NoError(t, err)
	_, err = svc.Purchase(ctx, uuid.New().String(), second)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Orders)
	assert.Equal(t, 500000.0, stats.Revenue)
}
