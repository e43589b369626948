package queries

import (
	"errors"
	"time"

	"compras/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

const (
	readyOrdersDefaultLimit = 1000
	readyOrdersMaxLimit     = 5000
)

// GetReadyOrdersQuery lists orders sitting in READY for couriers to pick up,
// optionally restricted to deliveries already assigned to one courier.
type GetReadyOrdersQuery struct {
	limit     int
	courierID *int64

	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates the query. A non-positive limit falls back
// to the default; anything above the cap is clamped.
func NewGetReadyOrdersQuery(limit int, courierID *int64) GetReadyOrdersQuery {
	if limit <= 0 {
		limit = readyOrdersDefaultLimit
	}
	if limit > readyOrdersMaxLimit {
		limit = readyOrdersMaxLimit
	}

	return GetReadyOrdersQuery{
		limit:     limit,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// Limit returns the clamped row cap.
func (q GetReadyOrdersQuery) Limit() int {
	return q.limit
}

// CourierID returns the optional courier filter.
func (q GetReadyOrdersQuery) CourierID() *int64 {
	return q.courierID
}

// GetReadyOrdersQueryResponse is one READY order with its delivery address.
type GetReadyOrdersQueryResponse struct {
	ID            int64
	Folio         string
	UserID        int64
	Price         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
	Address       *string
	Phone         *string
}
