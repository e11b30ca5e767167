// AngelaMos | 2026
// handler_test.go

package listing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehaven/realty-api/internal/middleware"
)

// stubAuth plays the authenticator's part, tagging every request with a
// fixed identity and role.
func stubAuth(userID, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
			ctx = context.WithValue(ctx, middleware.UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(repo Repository, role string) chi.Router {
	handler := NewHandler(NewService(repo))

	router := chi.NewRouter()
	handler.RegisterRoutes(
		router,
		stubAuth(uuid.New().String(), role),
		middleware.RequireAdmin,
	)
	return router
}

func doJSON(
	t *testing.T,
	router chi.Router,
	method, path, body string,
) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, r)
	return rec
}

func decodeListing(t *testing.T, body []byte) ListingResponse {
	t.Helper()

	var envelope struct {
		Listing ListingResponse `json:"listing"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Listing
}

func TestHandler_CreateAndGet(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "admin")

	rec := doJSON(t, router, http.MethodPost, "/listings", `{
		"title": "Lake House",
		"type": "house",
		"price": 500000,
		"location": "Lakeside",
		"bedrooms": 4
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeListing(t, rec.Body.Bytes())
	assert.Equal(t, "Lake House", created.Title)
	assert.Equal(t, "house", created.Kind)
	assert.Equal(t, "available", created.Status)
	require.NotNil(t, created.Bedrooms)
	assert.Equal(t, 4, *created.Bedrooms)

	get := doJSON(t, router, http.MethodGet, "/listings/"+created.ID, "")
	require.Equal(t, http.StatusOK, get.Code)
	assert.Equal(t, created.ID, decodeListing(t, get.Body.Bytes()).ID)
}

func TestHandler_CreateValidation(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "admin")

	tests := []struct {
		name string
		body string
	}{
		{"missing price", `{"title":"Lake House","type":"house","location":"Lakeside"}`},
		{"negative price", `{"title":"Lake House","type":"house","price":-1,"location":"Lakeside"}`},
		{"unknown type", `{"title":"Castle","type":"castle","price":1,"location":"Hill"}`},
		{"short title", `{"title":"ab","type":"house","price":1,"location":"Lakeside"}`},
		{"not json", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/listings", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_CreateForbiddenForNonAdmin(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "user")

	rec := doJSON(t, router, http.MethodPost, "/listings", `{
		"title": "Lake House",
		"type": "house",
		"price": 500000,
		"location": "Lakeside"
	}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_ListIsPublicAndFilters(t *testing.T) {
	repo := newFakeRepository()
	admin := newTestRouter(repo, "admin")

	create := doJSON(t, admin, http.MethodPost, "/listings", `{
		"title": "Meadow Plot",
		"type": "land",
		"price": 80000,
		"location": "Meadow"
	}`)
	require.Equal(t, http.StatusCreated, create.Code)

	// No identity at all: listings are world-readable.
	handler := NewHandler(NewService(repo))
	public := chi.NewRouter()
	handler.RegisterRoutes(
		public,
		middleware.RequireAdmin,
		middleware.RequireAdmin,
	)

	rec := doJSON(t, public, http.MethodGet, "/listings?type=land", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Listings []ListingResponse `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Listings, 1)
	assert.Equal(t, "Meadow Plot", body.Listings[0].Title)

	bad := doJSON(t, public, http.MethodGet, "/listings?type=castle", "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestHandler_GetUnknownListing(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "admin")

	rec := doJSON(
		t,
		router,
		http.MethodGet,
		"/listings/"+uuid.New().String(),
		"",
	)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "admin")

	create := doJSON(t, router, http.MethodPost, "/listings", `{
		"title": "Lake House",
		"type": "house",
		"price": 500000,
		"location": "Lakeside"
	}`)
	require.Equal(t, http.StatusCreated, create.Code)
	created := decodeListing(t, create.Body.Bytes())

	rec := doJSON(t, router, http.MethodPut, "/listings/"+created.ID,
		`{"price": 450000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeListing(t, rec.Body.Bytes())
	assert.Equal(t, 450000.0, updated.Price)
	assert.Equal(t, "Lake House", updated.Title)
	assert.Equal(t, "available", updated.Status)
}

func TestHandler_DeleteConflictWithOrders(t *testing.T) {
	repo := newFakeRepository()
	router := newTestRouter(repo, "admin")

	create := doJSON(t, router, http.MethodPost, "/listings", `{
		"title": "Lake House",
		"type": "house",
		"price": 500000,
		"location": "Lakeside"
	}`)
	require.Equal(t, http.StatusCreated, create.Code)
	created := decodeListing(t, create.Body.Bytes())

	repo.withOrder[created.ID] = true

	rec := doJSON(t, router, http.MethodDelete, "/listings/"+created.ID, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	router := newTestRouter(newFakeRepository(), "admin")

	create := doJSON(t, router, http.MethodPost, "/listings", `{
		"title": "Lake House",
		"type": "house",
		"price": 500000,
		"location": "Lakeside"
	}`)
	require.Equal(t, http.StatusCreated, create.Code)
	created := decodeListing(t, create.Body.Bytes())

	rec := doJSON(t, router, http.MethodDelete, "/listings/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	get := doJSON(t, router, http.MethodGet, "/listings/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, get.Code)
}
