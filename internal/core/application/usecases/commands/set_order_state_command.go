package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrSetOrderStateCommandIsNotConstructed = errors.New(
	"SetOrderStateCommand must be created via NewSetOrderStateCommand constructor",
)

// SetOrderStateCommand moves an order, addressed by folio, to the state with
// the given code. A missing transition edge is synthesized, never rejected.
type SetOrderStateCommand struct { //nolint:recvcheck //using for validation
	folio  order.Folio
	toCode string
	note   string

	guard guard.ConstructorGuard
}

// NewSetOrderStateCommand creates the command, validating the folio format
// and requiring a target state code.
func NewSetOrderStateCommand(folio, toCode, note string) (SetOrderStateCommand, error) {
	cmd := SetOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFolio(folio),
		cmd.setToCode(toCode),
	); err != nil {
		return SetOrderStateCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStateCommandIsNotConstructed)
}

// Folio returns the order's folio.
func (c SetOrderStateCommand) Folio() order.Folio {
	return c.folio
}

// ToCode returns the normalized target state code.
func (c SetOrderStateCommand) ToCode() string {
	return c.toCode
}

// Note returns the caller-supplied audit note, empty for the default.
func (c SetOrderStateCommand) Note() string {
	return c.note
}

func (c *SetOrderStateCommand) setFolio(raw string) error {
	folio, err := order.ParseFolio(raw)
	if err != nil {
		return err
	}
	c.folio = folio
	return nil
}

func (c *SetOrderStateCommand) setToCode(raw string) error {
	code := workflow.NormalizeStateCode(raw)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.toCode = code
	return nil
}
