// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"compras/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkflowRepoFactory provides access to workflow definitions within a
	// transaction.
	WorkflowRepoFactory interface {
		WorkflowRepository() ports.WorkflowRepository
	}

	// OrderRepoFactory provides access to order persistence within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
		HistoryRepository() ports.HistoryRepository
	}

	// DeliveryRepoFactory provides access to delivery persistence within a
	// transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CartRepoFactory provides access to cart persistence and the product
	// catalog within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
		ProductCatalog() ports.ProductCatalog
	}

	// OrderUoW manages transactions for order advance operations: the order,
	// its audit trail, the workflow definitions and the delivery row every
	// transition touches.
	OrderUoW interface {
		TxManager
		WorkflowRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CartUoW manages transactions for cart maintenance operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CourierUoW adds payment persistence to the order advance surface for
	// the courier actions.
	CourierUoW interface {
		OrderUoW
		PaymentRepository() ports.PaymentRepository
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CheckoutUoW manages the checkout transaction, which spans every write
	// table of the system except payments.
	CheckoutUoW interface {
		TxManager
		WorkflowRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		CartRepoFactory
		PersonalizationRepository() ports.PersonalizationRepository
		AddressRepository() ports.AddressRepository
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AssignmentUoW manages transactions for operator assignment.
	AssignmentUoW interface {
		TxManager
		AssignmentRepository() ports.AssignmentRepository
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
