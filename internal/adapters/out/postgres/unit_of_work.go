// Package postgres implements the persistence ports on top of GORM and
// PostgreSQL. The unit of work owns the transaction lifecycle; the repository
// sub-packages map domain aggregates to their tables.
package postgres

import (
	"context"

	"compras/internal/adapters/out/postgres/addressrepo"
	"compras/internal/adapters/out/postgres/assignmentrepo"
	"compras/internal/adapters/out/postgres/cartrepo"
	"compras/internal/adapters/out/postgres/catalogrepo"
	"compras/internal/adapters/out/postgres/deliveryrepo"
	"compras/internal/adapters/out/postgres/historyrepo"
	"compras/internal/adapters/out/postgres/orderrepo"
	"compras/internal/adapters/out/postgres/paymentrepo"
	"compras/internal/adapters/out/postgres/personalizationrepo"
	"compras/internal/adapters/out/postgres/workflowrepo"
	"compras/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates GORM-based unit of work instances, one per
// command execution.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a new unit of work factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work bound to the factory's connection.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

var _ ports.UnitOfWork = (*GormUnitOfWork)(nil)

// GormUnitOfWork implements the unit of work pattern over a GORM transaction.
// Repositories obtained from it run inside the active transaction when one
// has been started, and directly on the connection otherwise.
//
// The zero transaction state makes Rollback after a successful Commit a
// no-op, which lets command handlers defer Rollback unconditionally.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin while a transaction
// is already active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit commits the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback rolls back the current transaction. Rolling back without an
// active transaction is a no-op so handlers can defer it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// WorkflowRepository returns the workflow definition repository bound to the
// current transaction.
func (uow *GormUnitOfWork) WorkflowRepository() ports.WorkflowRepository {
	return workflowrepo.NewGormWorkflowRepository(uow.conn())
}

// OrderRepository returns the order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// CartRepository returns the cart repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// ProductCatalog returns the product price reader bound to the current
// transaction.
func (uow *GormUnitOfWork) ProductCatalog() ports.ProductCatalog {
	return catalogrepo.NewGormProductCatalog(uow.conn())
}

// PersonalizationRepository returns the personalization repository bound to
// the current transaction.
func (uow *GormUnitOfWork) PersonalizationRepository() ports.PersonalizationRepository {
	return personalizationrepo.NewGormPersonalizationRepository(uow.conn())
}

// AddressRepository returns the address repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}

// DeliveryRepository returns the delivery repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn())
}

// HistoryRepository returns the audit trail repository bound to the current
// transaction.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// PaymentRepository returns the payment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn())
}

// AssignmentRepository returns the operator assignment repository bound to
// the current transaction.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn())
}
