// Package queries contains read-only operations over the storefront's data.
// Queries bypass the domain model and read projections straight from the
// database, implementing the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery assembles the public tracking view of an order: the order
// with its current state, the delivery row, the recent delivery events and
// the process's public steps.
type GetTrackingQuery struct {
	folio order.Folio

	guard guard.ConstructorGuard
}

// NewGetTrackingQuery creates a tracking query for the given folio.
func NewGetTrackingQuery(folio string) (GetTrackingQuery, error) {
	parsed, err := order.ParseFolio(folio)
	if err != nil {
		return GetTrackingQuery{}, err
	}
	return GetTrackingQuery{folio: parsed, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// Folio returns the tracked order's folio.
func (q GetTrackingQuery) Folio() order.Folio {
	return q.folio
}

// TrackingOrder is the order section of the tracking view.
type TrackingOrder struct {
	ID         int64
	Folio      string
	UserID     int64
	Total      decimal.Decimal
	ProcessID  int64
	StateID    int64
	StateCode  string
	StateName  string
	PublicStep *int
}

// TrackingDelivery is the delivery section of the tracking view. Nil when no
// delivery row exists yet.
type TrackingDelivery struct {
	ID              int64
	OrderID         int64
	CourierID       *int64
	Status          string
	CashCollectedAt *time.Time
	DeliveredAt     *time.Time
}

// TrackingEvent is one delivery breadcrumb, newest first.
type TrackingEvent struct {
	ID         int64
	DeliveryID int64
	StateID    int64
	Lat        *decimal.Decimal
	Lng        *decimal.Decimal
	CreatedAt  time.Time
}

// TrackingStep is one state of the order process visible to buyers, ordered
// by its public step number.
type TrackingStep struct {
	Code       string
	Name       string
	PublicStep int
}

// GetTrackingQueryResponse is the assembled tracking view.
type GetTrackingQueryResponse struct {
	Order    TrackingOrder
	Delivery *TrackingDelivery
	Events   []TrackingEvent
	Steps    []TrackingStep
}
