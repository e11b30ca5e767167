// AngelaMos | 2026
// repository.go

package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/primehaven/realty-api/internal/core"
)

type StatusCounts struct {
	Available int `db:"available"`
	Sold      int `db:"sold"`
}

type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params ListParams) ([]Listing, error)
	HasOrders(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, listing *Listing) error {
	query := `
		INSERT INTO listings (
			id, title, kind, price, location, description, images,
			area_sqft, bedrooms, bathrooms, status, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, listing, query,
		listing.ID,
		listing.Title,
		listing.Kind,
		listing.Price,
		listing.Location,
		listing.Description,
		listing.Images,
		listing.AreaSqFt,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.Status,
		listing.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Listing, error) {
	query := `
		SELECT id, title, kind, price, location, description, images,
		       area_sqft, bedrooms, bathrooms, status, created_by,
		       created_at, updated_at
		FROM listings
		WHERE id = $1`

	var listing Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return &listing, nil
}

// Update writes descriptive fields only. The status column is owned by the
// purchase transition and is never touched here.
func (r *repository) Update(ctx context.Context, listing *Listing) error {
	query := `
		UPDATE listings
		SET title = $2, kind = $3, price = $4, location = $5,
		    description = $6, images = $7, area_sqft = $8,
		    bedrooms = $9, bathrooms = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &listing.UpdatedAt, query,
		listing.ID,
		listing.Title,
		listing.Kind,
		listing.Price,
		listing.Location,
		listing.Description,
		listing.Images,
		listing.AreaSqFt,
		listing.Bedrooms,
		listing.Bathrooms,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update listing: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM listings WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete listing: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Listing, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Kind != "" {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, params.Kind)
		argIdx++
	}

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, params.Status)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, title, kind, price, location, description, images,
		       area_sqft, bedrooms, bathrooms, status, created_by,
		       created_at, updated_at
		FROM listings
		%s
		ORDER BY created_at DESC`,
		whereClause)

	listings := []Listing{}
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return listings, nil
}

func (r *repository) HasOrders(
	ctx context.Context,
	id string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE listing_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check listing orders: %w", err)
	}

	return exists, nil
}

func (r *repository) CountByStatus(
	ctx context.Context,
) (StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'available') AS available,
			COUNT(*) FILTER (WHERE status = 'sold') AS sold
		FROM listings`

	var counts StatusCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return StatusCounts{}, fmt.Errorf("count listings: %w", err)
	}

	return counts, nil
}
