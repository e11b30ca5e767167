// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/primehaven/realty-api/internal/core"
	"github.com/primehaven/realty-api/internal/listing"
	"github.com/primehaven/realty-api/internal/order"
)

type Handler struct {
	dbStats       func() sql.DBStats
	redisStats    func() *redis.PoolStats
	listingCounts func(ctx context.Context) (listing.StatusCounts, error)
	orderStats    func(ctx context.Context) (order.Stats, error)
	userCount     func(ctx context.Context) (int, error)
}

type HandlerConfig struct {
	DBStats       func() sql.DBStats
	RedisStats    func() *redis.PoolStats
	ListingCounts func(ctx context.Context) (listing.StatusCounts, error)
	OrderStats    func(ctx context.Context) (order.Stats, error)
	UserCount     func(ctx context.Context) (int, error)
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		dbStats:       cfg.DBStats,
		redisStats:    cfg.RedisStats,
		listingCounts: cfg.ListingCounts,
		orderStats:    cfg.OrderStats,
		userCount:     cfg.UserCount,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/stats", h.GetStats)
	})
}

type StatsResponse struct {
	Marketplace MarketplaceStats `json:"marketplace"`
	Database    DatabaseStats    `json:"database"`
	Redis       RedisStats       `json:"redis"`
	Runtime     RuntimeStats     `json:"runtime"`
}

type MarketplaceStats struct {
	Users             int     `json:"users"`
	ListingsAvailable int     `json:"listingsAvailable"`
	ListingsSold      int     `json:"listingsSold"`
	Orders            int     `json:"orders"`
	Revenue           float64 `json:"revenue"`
}

type DatabaseStats struct {
	OpenConnections int `json:"openConnections"`
	InUse           int `json:"inUse"`
	Idle            int `json:"idle"`
}

type RedisStats struct {
	TotalConns uint32 `json:"totalConns"`
	IdleConns  uint32 `json:"idleConns"`
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
}

type RuntimeStats struct {
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	NumGC      uint32 `json:"numGC"`
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.listingCounts(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	orderStats, err := h.orderStats(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	users, err := h.userCount(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	dbStats := h.dbStats()
	redisStats := h.redisStats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	core.OK(w, StatsResponse{
		Marketplace: MarketplaceStats{
			Users:             users,
			ListingsAvailable: counts.Available,
			ListingsSold:      counts.Sold,
			Orders:            orderStats.Orders,
			Revenue:           orderStats.Revenue,
		},
		Database: DatabaseStats{
			OpenConnections: dbStats.OpenConnections,
			InUse:           dbStats.InUse,
			Idle:            dbStats.Idle,
		},
		Redis: RedisStats{
			TotalConns: redisStats.TotalConns,
			IdleConns:  redisStats.IdleConns,
			Hits:       redisStats.Hits,
			Misses:     redisStats.Misses,
		},
		Runtime: RuntimeStats{
			Goroutines: runtime.NumGoroutine(),
			HeapAlloc:  memStats.HeapAlloc,
			NumGC:      memStats.NumGC,
		},
	})
}
