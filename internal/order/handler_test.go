// AngelaMos | 2026
// handler_test.go

package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehaven/realty-api/internal/middleware"
)

// stubAuth injects an authenticated buyer the way the real authenticator
// does, without a token round trip.
func stubAuth(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
			ctx = context.WithValue(ctx, middleware.UserRoleKey, "user")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(repo *fakeRepository, buyerID string) chi.Router {
	handler := NewHandler(NewService(repo))

	router := chi.NewRouter()
	handler.RegisterRoutes(router, stubAuth(buyerID))
	return router
}

func TestHandler_Purchase(t *testing.T) {
	repo := newFakeRepository()
	listingID := repo.addListing(500000)
	buyerID := uuid.New().String()
	router := newTestRouter(repo, buyerID)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/orders/purchase/"+listingID,
		nil,
	)
	router.ServeHTTP(rec, r)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Order OrderResponse `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, listingID, body.Order.Listing)
	assert.Equal(t, buyerID, body.Order.Buyer)
	assert.Equal(t, 500000.0, body.Order.PriceAtPurchase)
}

func TestHandler_PurchaseUnknownListing(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, uuid.New().String())

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(
		http.MethodPost,
		"/orders/purchase/"+uuid.New().String(),
		nil,
	)
	router.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_PurchaseSoldListing(t *testing.T) {
	repo := newFakeRepository()
	listingID := repo.addListing(500000)
	router := newTestRouter(repo, uuid.New().String())

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(
		http.MethodPost,
		"/orders/purchase/"+listingID,
		nil,
	))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(
		http.MethodPost,
		"/orders/purchase/"+listingID,
		nil,
	))

	assert.Equal(t, http.StatusConflict, second.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "listing not available", body.Error.Message)
}

func TestHandler_MyOrders(t *testing.T) {
	repo := newFakeRepository()
	listingID := repo.addListing(500000)
	buyerID := uuid.New().String()
	router := newTestRouter(repo, buyerID)

	purchase := httptest.NewRecorder()
	router.ServeHTTP(purchase, httptest.NewRequest(
		http.MethodPost,
		"/orders/purchase/"+listingID,
		nil,
	))
	require.Equal(t, http.StatusCreated, purchase.Code)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet,
		"/orders/mine",
		nil,
	))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Orders []BuyerOrderResponse `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, buyerID, body.Orders[0].Buyer)
	assert.Equal(t, 500000.0, body.Orders[0].PriceAtPurchase)
}

func TestHandler_MyOrdersEmptyList(t *testing.T) {
	router := newTestRouter(newFakeRepository(), uuid.New().String())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodGet,
		"/orders/mine",
		nil,
	))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[]}`, rec.Body.String())
}
