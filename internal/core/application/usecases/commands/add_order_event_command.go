package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/guard"
)

var ErrAddOrderEventCommandIsNotConstructed = errors.New(
	"AddOrderEventCommand must be created via NewAddOrderEventCommand constructor",
)

// AddOrderEventCommand records a manual note against an order without moving
// its state. The audit trail gains an entry referencing the current state
// through a reflexive transition.
type AddOrderEventCommand struct { //nolint:recvcheck //using for validation
	folio order.Folio
	note  string

	guard guard.ConstructorGuard
}

// NewAddOrderEventCommand creates the command, validating the folio format.
func NewAddOrderEventCommand(folio, note string) (AddOrderEventCommand, error) {
	cmd := AddOrderEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFolio(folio); err != nil {
		return AddOrderEventCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderEventCommandIsNotConstructed)
}

// Folio returns the order's folio.
func (c AddOrderEventCommand) Folio() order.Folio {
	return c.folio
}

// Note returns the caller-supplied note, empty for the default.
func (c AddOrderEventCommand) Note() string {
	return c.note
}

func (c *AddOrderEventCommand) setFolio(raw string) error {
	folio, err := order.ParseFolio(raw)
	if err != nil {
		return err
	}
	c.folio = folio
	return nil
}
