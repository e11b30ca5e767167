// AngelaMos | 2026
// entity.go

package listing

import (
	"time"

	"github.com/lib/pq"
)

type Listing struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Kind        string         `db:"kind"`
	Price       float64        `db:"price"`
	Location    string         `db:"location"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	AreaSqFt    *float64       `db:"area_sqft"`
	Bedrooms    *int           `db:"bedrooms"`
	Bathrooms   *int           `db:"bathrooms"`
	Status      string         `db:"status"`
	CreatedBy   string         `db:"created_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (l *Listing) IsAvailable() bool {
	return l.Status == StatusAvailable
}

const (
	KindHouse = "house"
	KindLand  = "land"
)

// Status is a two-state machine: available transitions to sold exactly once,
// through a successful purchase, and never back.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

func ValidKind(kind string) bool {
	return kind == KindHouse || kind == KindLand
}

func ValidStatus(status string) bool {
	return status == StatusAvailable || status == StatusSold
}
