// AngelaMos | 2026
// dto.go

package listing

import (
	"time"
)

type CreateListingRequest struct {
	Title       string   `json:"title"                 validate:"required,min=3,max=120"`
	Kind        string   `json:"type"                  validate:"required,oneof=house land"`
	Price       *float64 `json:"price"                 validate:"required,gte=0"`
	Location    string   `json:"location"              validate:"required,min=2,max=120"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=4000"`
	Images      []string `json:"images,omitempty"      validate:"omitempty,dive,max=2048"`
	AreaSqFt    *float64 `json:"areaSqFt,omitempty"    validate:"omitempty,gte=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty"    validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty"   validate:"omitempty,gte=0"`
}

// UpdateListingRequest merges descriptive fields only. Status is deliberately
// absent: the only way a listing becomes sold is a successful purchase.
type UpdateListingRequest struct {
	Title       *string  `json:"title,omitempty"       validate:"omitempty,min=3,max=120"`
	Kind        *string  `json:"type,omitempty"        validate:"omitempty,oneof=house land"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gte=0"`
	Location    *string  `json:"location,omitempty"    validate:"omitempty,min=2,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=4000"`
	Images      []string `json:"images,omitempty"      validate:"omitempty,dive,max=2048"`
	AreaSqFt    *float64 `json:"areaSqFt,omitempty"    validate:"omitempty,gte=0"`
	Bedrooms    *int     `json:"bedrooms,omitempty"    validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms,omitempty"   validate:"omitempty,gte=0"`
}

type ListParams struct {
	Kind   string
	Status string
}

type ListingResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        string    `json:"type"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	AreaSqFt    *float64  `json:"areaSqFt,omitempty"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListingEnvelope struct {
	Listing ListingResponse `json:"listing"`
}

type ListingsEnvelope struct {
	Listings []ListingResponse `json:"listings"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}

func ToListingResponse(l *Listing) ListingResponse {
	images := []string(l.Images)
	if images == nil {
		images = []string{}
	}

	return ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Kind:        l.Kind,
		Price:       l.Price,
		Location:    l.Location,
		Description: l.Description,
		Images:      images,
		AreaSqFt:    l.AreaSqFt,
		Bedrooms:    l.Bedrooms,
		Bathrooms:   l.Bathrooms,
		Status:      l.Status,
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func ToListingResponseList(listings []Listing) []ListingResponse {
	responses := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		responses = append(responses, ToListingResponse(&listings[i]))
	}
	return responses
}
