package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/guard"
)

var ErrConfirmReceivedCommandIsNotConstructed = errors.New(
	"ConfirmReceivedCommand must be created via NewConfirmReceivedCommand constructor",
)

// ConfirmReceivedCommand records that a courier picked an order up. The order
// must currently sit in the READY state.
type ConfirmReceivedCommand struct { //nolint:recvcheck //using for validation
	folio         order.Folio
	courierUserID *int64

	guard guard.ConstructorGuard
}

// NewConfirmReceivedCommand creates the command, validating the folio format.
// The courier's user id is optional; anonymous pickups stay unattributed.
func NewConfirmReceivedCommand(folio string, courierUserID *int64) (ConfirmReceivedCommand, error) {
	cmd := ConfirmReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFolio(folio); err != nil {
		return ConfirmReceivedCommand{}, err
	}
	cmd.courierUserID = courierUserID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceivedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceivedCommandIsNotConstructed)
}

// Folio returns the order's folio.
func (c ConfirmReceivedCommand) Folio() order.Folio {
	return c.folio
}

// CourierUserID returns the courier's user id, nil when unattributed.
func (c ConfirmReceivedCommand) CourierUserID() *int64 {
	return c.courierUserID
}

func (c *ConfirmReceivedCommand) setFolio(raw string) error {
	folio, err := order.ParseFolio(raw)
	if err != nil {
		return err
	}
	c.folio = folio
	return nil
}
