package ports

import (
	"context"

	"compras/internal/core/domain/model/delivery"
)

// DeliveryRepository is the persistence contract for the courier sub-workflow.
type DeliveryRepository interface {
	// EnsureForOrder retrieves the order's delivery, creating it in pendiente
	// when it does not exist yet. Each order has at most one delivery.
	EnsureForOrder(ctx context.Context, orderID int64) (*delivery.Delivery, error)

	// GetByOrderID retrieves the order's delivery. Returns
	// errs.ObjectNotFoundError when none exists.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)

	// Update persists changes to a delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// AddEvent appends one breadcrumb to a delivery's trail.
	AddEvent(ctx context.Context, event *delivery.Event) error
}
