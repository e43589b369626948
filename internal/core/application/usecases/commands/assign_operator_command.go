package commands

import (
	"errors"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrAssignOperatorCommandIsNotConstructed = errors.New(
	"AssignOperatorCommand must be created via NewAssignOperatorCommand constructor",
)

// AssignOperatorCommand sets or clears the operator responsible for an order.
// A nil operator id clears the assignment. Assigning over an existing
// assignment replaces it; that is an upsert, not a conflict.
type AssignOperatorCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	operatorID *int64

	guard guard.ConstructorGuard
}

// NewAssignOperatorCommand creates the command.
func NewAssignOperatorCommand(orderID int64, operatorID *int64) (AssignOperatorCommand, error) {
	cmd := AssignOperatorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return AssignOperatorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOperatorCommand) Validate() error {
	return c.guard.Validate(ErrAssignOperatorCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c AssignOperatorCommand) OrderID() int64 {
	return c.orderID
}

// OperatorID returns the operator to assign, nil to clear.
func (c AssignOperatorCommand) OperatorID() *int64 {
	return c.operatorID
}

func (c *AssignOperatorCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("ordenId")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignOperatorCommand) setOperatorID(operatorID *int64) error {
	if operatorID != nil && *operatorID <= 0 {
		return errs.NewValueIsInvalidError("operadorUsuarioId")
	}
	c.operatorID = operatorID
	return nil
}
