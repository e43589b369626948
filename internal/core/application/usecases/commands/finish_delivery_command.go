package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/guard"
)

var ErrFinishDeliveryCommandIsNotConstructed = errors.New(
	"FinishDeliveryCommand must be created via NewFinishDeliveryCommand constructor",
)

// FinishDeliveryCommand completes an order's delivery: the delivery row is
// stamped entregado and the order advances to the terminal DONE state.
type FinishDeliveryCommand struct { //nolint:recvcheck //using for validation
	folio order.Folio

	guard guard.ConstructorGuard
}

// NewFinishDeliveryCommand creates the command, validating the folio format.
func NewFinishDeliveryCommand(folio string) (FinishDeliveryCommand, error) {
	cmd := FinishDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFolio(folio); err != nil {
		return FinishDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFinishDeliveryCommandIsNotConstructed)
}

// Folio returns the order's folio.
func (c FinishDeliveryCommand) Folio() order.Folio {
	return c.folio
}

func (c *FinishDeliveryCommand) setFolio(raw string) error {
	folio, err := order.ParseFolio(raw)
	if err != nil {
		return err
	}
	c.folio = folio
	return nil
}
