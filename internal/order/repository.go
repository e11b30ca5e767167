// AngelaMos | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/primehaven/realty-api/internal/core"
)

type Repository interface {
	Purchase(ctx context.Context, order *Order) error
	ListByBuyer(ctx context.Context, buyerID string) ([]BuyerOrder, error)
	Count(ctx context.Context) (int, error)
	Revenue(ctx context.Context) (float64, error)
}

// repository holds the *sqlx.DB rather than core.DBTX because Purchase opens
// its own transaction.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Purchase performs the available→sold transition and records the order as
// one unit. The status flip is a single conditional UPDATE, so of any number
// of concurrent purchases for the same listing exactly one matches an
// available row; the rest see zero rows and fail without writing anything.
// The surrounding transaction guarantees the listing never flips to sold
// without its order, and vice versa.
func (r *repository) Purchase(ctx context.Context, order *Order) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		flip := `
			UPDATE listings
			SET status = 'sold', updated_at = NOW()
			WHERE id = $1 AND status = 'available'
			RETURNING price`

		var price float64
		err := tx.GetContext(ctx, &price, flip, order.ListingID)
		if errors.Is(err, sql.ErrNoRows) {
			return r.classifyFailedFlip(ctx, tx, order.ListingID)
		}
		if err != nil {
			return fmt.Errorf("mark listing sold: %w", err)
		}

		order.PriceAtPurchase = price

		insert := `
			INSERT INTO orders (id, buyer_id, listing_id, price_at_purchase)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`

		err = tx.GetContext(ctx, &order.CreatedAt, insert,
			order.ID,
			order.BuyerID,
			order.ListingID,
			order.PriceAtPurchase,
		)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return nil
	})
}

// classifyFailedFlip distinguishes a missing listing from one already sold.
func (r *repository) classifyFailedFlip(
	ctx context.Context,
	tx *sqlx.Tx,
	listingID string,
) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM listings WHERE id = $1)`
	if err := tx.GetContext(ctx, &exists, query, listingID); err != nil {
		return fmt.Errorf("check listing: %w", err)
	}

	if !exists {
		return fmt.Errorf("purchase: %w", core.ErrNotFound)
	}

	return fmt.Errorf("purchase: listing not available: %w", core.ErrConflict)
}

func (r *repository) ListByBuyer(
	ctx context.Context,
	buyerID string,
) ([]BuyerOrder, error) {
	query := `
		SELECT
			o.id, o.buyer_id, o.listing_id, o.price_at_purchase, o.created_at,
			l.id AS "listing.id",
			l.title AS "listing.title",
			l.kind AS "listing.kind",
			l.price AS "listing.price",
			l.location AS "listing.location",
			l.description AS "listing.description",
			l.images AS "listing.images",
			l.area_sqft AS "listing.area_sqft",
			l.bedrooms AS "listing.bedrooms",
			l.bathrooms AS "listing.bathrooms",
			l.status AS "listing.status",
			l.created_by AS "listing.created_by",
			l.created_at AS "listing.created_at",
			l.updated_at AS "listing.updated_at"
		FROM orders o
		JOIN listings l ON l.id = o.listing_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC`

	orders := []BuyerOrder{}
	if err := r.db.SelectContext(ctx, &orders, query, buyerID); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *repository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64
	query := `SELECT COALESCE(SUM(price_at_purchase), 0) FROM orders`
	if err := r.db.GetContext(ctx, &revenue, query); err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}

	return revenue, nil
}
