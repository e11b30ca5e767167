// AngelaMos | 2026
// handler.go

package order

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/primehaven/realty-api/internal/core"
	"github.com/primehaven/realty-api/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/purchase/{listingID}", h.Purchase)
		r.Get("/mine", h.MyOrders)
	})
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	buyerID := middleware.GetUserID(r.Context())
	listingID := chi.URLParam(r, "listingID")

	order, err := h.service.Purchase(r.Context(), buyerID, listingID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "listing")
			return
		}
		if errors.Is(err, core.ErrConflict) {
			core.Conflict(w, "listing not available")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, OrderEnvelope{Order: ToOrderResponse(order)})
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	buyerID := middleware.GetUserID(r.Context())

	orders, err := h.service.MyOrders(r.Context(), buyerID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, OrdersEnvelope{Orders: ToBuyerOrderResponseList(orders)})
}
