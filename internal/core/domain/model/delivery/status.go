// Package delivery models the courier-facing sub-workflow that tracks
// physical handoff of a completed order. Exactly one Delivery exists per
// order, created lazily the first time anything needs it; DeliveryEvents are
// its append-only trail, feeding the customer tracking view.
package delivery

import (
	"fmt"

	"compras/internal/pkg/errs"
)

// Status is the delivery sub-state, independent of (but correlated with) the
// order's primary workflow state.
//
// State transitions:
//
//	pendiente ──> en_ruta ──> entregado
//
// Statuses are persisted as their Spanish literals.
type Status string

const (
	// StatusPending is the initial sub-state, set when the row is created.
	StatusPending Status = "pendiente"
	// StatusEnRoute means the courier confirmed receiving the order.
	StatusEnRoute Status = "en_ruta"
	// StatusDelivered is the final sub-state, set by finish-delivery.
	StatusDelivered Status = "entregado"
)

// Validate checks the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusEnRoute, StatusDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("estado entrega",
			fmt.Errorf("%q is not a delivery status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
