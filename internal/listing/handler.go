// AngelaMos | 2026
// handler.go

package listing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/primehaven/realty-api/internal/core"
	"github.com/primehaven/realty-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{listingID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(adminOnly)

			r.Post("/", h.Create)
			r.Put("/{listingID}", h.Update)
			r.Delete("/{listingID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListParams{
		Kind:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
	}

	listings, err := h.service.List(r.Context(), params)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "type must be house or land; status must be available or sold")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ListingsEnvelope{Listings: ToListingResponseList(listings)})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	listing, err := h.service.Get(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ListingEnvelope{Listing: ToListingResponse(listing)})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetUserID(r.Context())

	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	listing, err := h.service.Create(r.Context(), adminID, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ListingEnvelope{Listing: ToListingResponse(listing)})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	var req UpdateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	listing, err := h.service.Update(r.Context(), listingID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ListingEnvelope{Listing: ToListingResponse(listing)})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	if err := h.service.Delete(r.Context(), listingID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		if errors.Is(err, core.ErrConflict) {
			core.Conflict(w, "listing has existing orders")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DeleteResponse{OK: true})
}
