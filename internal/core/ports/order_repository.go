package ports

import (
	"context"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/personalization"
)

// OrderRepository is the persistence contract for order aggregates and their
// lines.
type OrderRepository interface {
	// Add persists a new order, assigning its generated identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order by identifier.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByFolio retrieves an order by its folio.
	GetByFolio(ctx context.Context, folio order.Folio) (*order.Order, error)

	// FolioExists reports whether any order already carries the folio.
	FolioExists(ctx context.Context, folio order.Folio) (bool, error)

	// AddItem persists a new order line, assigning its generated identifier.
	AddItem(ctx context.Context, item *order.OrderItem) error

	// UpdateItem persists changes to an order line (personalization refs).
	UpdateItem(ctx context.Context, item *order.OrderItem) error

	// GetItems retrieves an order's lines in insertion order.
	GetItems(ctx context.Context, orderID int64) ([]*order.OrderItem, error)

	// UpsertImage records which uploaded file represents one side of the
	// order, replacing any previous file for that side, and reparents the
	// file to the order.
	UpsertImage(ctx context.Context, orderID int64, side personalization.Side, fileID int64) error
}

// AddressRepository persists delivery addresses captured at checkout.
type AddressRepository interface {
	// Add persists a new address, assigning its generated identifier.
	Add(ctx context.Context, address *order.Address) error
}

// HistoryRepository appends to and reads an order's audit trail.
type HistoryRepository interface {
	// Append persists one audit row.
	Append(ctx context.Context, entry *order.HistoryEntry) error
}

// PaymentRepository is the persistence contract for payment attempts.
type PaymentRepository interface {
	// Add persists a new payment attempt, assigning its generated identifier.
	Add(ctx context.Context, payment *order.Payment) error
}

// AssignmentRepository manages the order-to-operator assignment table.
type AssignmentRepository interface {
	// Upsert assigns an operator to an order, replacing a previous one.
	Upsert(ctx context.Context, orderID, operatorID int64) error

	// Delete clears an order's assignment. Deleting a missing assignment is
	// not an error.
	Delete(ctx context.Context, orderID int64) error
}
