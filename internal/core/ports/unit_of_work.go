package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the active transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op, which lets handlers defer it.
	Rollback(ctx context.Context) error

	WorkflowRepository() WorkflowRepository
	OrderRepository() OrderRepository
	CartRepository() CartRepository
	ProductCatalog() ProductCatalog
	PersonalizationRepository() PersonalizationRepository
	AddressRepository() AddressRepository
	DeliveryRepository() DeliveryRepository
	HistoryRepository() HistoryRepository
	PaymentRepository() PaymentRepository
	AssignmentRepository() AssignmentRepository
}
