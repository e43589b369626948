package commands

import (
	"errors"
	"fmt"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand is the operator's narrow variant of set-state: orders
// are addressed by id, the target is restricted to the two production-line
// codes, and only declared transition edges are honored.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	toCode  string
	note    string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates the command. The target must be PROC or
// READY; everything else is rejected before any transaction opens.
func NewAdvanceOrderCommand(orderID int64, toCode, note string) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToCode(toCode),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c AdvanceOrderCommand) OrderID() int64 {
	return c.orderID
}

// ToCode returns the normalized target state code.
func (c AdvanceOrderCommand) ToCode() string {
	return c.toCode
}

// Note returns the operator's note, empty for the default.
func (c AdvanceOrderCommand) Note() string {
	return c.note
}

func (c *AdvanceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setToCode(raw string) error {
	code := workflow.NormalizeStateCode(raw)
	if code != workflow.StateCodeProcessing && code != workflow.StateCodeReady {
		return errs.NewValueIsInvalidErrorWithCause("to",
			fmt.Errorf("%q is not an operator target (PROC|READY)", raw))
	}
	c.toCode = code
	return nil
}
