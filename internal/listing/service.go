// AngelaMos | 2026
// service.go

package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/primehaven/realty-api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(
	ctx context.Context,
	params ListParams,
) ([]Listing, error) {
	if params.Kind != "" && !ValidKind(params.Kind) {
		return nil, fmt.Errorf(
			"list listings: invalid type %q: %w",
			params.Kind,
			core.ErrInvalidInput,
		)
	}

	if params.Status != "" && !ValidStatus(params.Status) {
		return nil, fmt.Errorf(
			"list listings: invalid status %q: %w",
			params.Status,
			core.ErrInvalidInput,
		)
	}

	return s.repo.List(ctx, params)
}

func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get listing: %w", core.ErrNotFound)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	adminID string,
	req CreateListingRequest,
) (*Listing, error) {
	listing := &Listing{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Kind:        req.Kind,
		Price:       *req.Price,
		Location:    req.Location,
		Description: req.Description,
		Images:      pq.StringArray(req.Images),
		AreaSqFt:    req.AreaSqFt,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Status:      StatusAvailable,
		CreatedBy:   adminID,
	}

	if listing.Images == nil {
		listing.Images = pq.StringArray{}
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Update applies a partial merge of descriptive fields. Fields absent from
// the request are left unchanged; status cannot be set through here.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateListingRequest,
) (*Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Kind != nil {
		listing.Kind = *req.Kind
	}
	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Images != nil {
		listing.Images = pq.StringArray(req.Images)
	}
	if req.AreaSqFt != nil {
		listing.AreaSqFt = req.AreaSqFt
	}
	if req.Bedrooms != nil {
		listing.Bedrooms = req.Bedrooms
	}
	if req.Bathrooms != nil {
		listing.Bathrooms = req.Bathrooms
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// Delete removes a listing permanently. Listings referenced by orders are
// protected so purchase history never dangles.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("delete listing: %w", core.ErrNotFound)
	}

	hasOrders, err := s.repo.HasOrders(ctx, id)
	if err != nil {
		return err
	}

	if hasOrders {
		return fmt.Errorf(
			"delete listing: has existing orders: %w",
			core.ErrConflict,
		)
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) CountByStatus(ctx context.Context) (StatusCounts, error) {
	return s.repo.CountByStatus(ctx)
}
