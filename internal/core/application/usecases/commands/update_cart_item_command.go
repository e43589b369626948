package commands

import (
	"errors"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand replaces a cart line's quantity. Zero removes
// the line, matching how the storefront's stepper treats "0".
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	itemID   int64
	quantity int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemQuantityCommand creates the command. Quantity zero is
// legal and means removal; negatives are rejected.
func NewUpdateCartItemQuantityCommand(itemID int64, quantity int) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

// ItemID returns the cart line's identifier.
func (c UpdateCartItemQuantityCommand) ItemID() int64 {
	return c.itemID
}

// Quantity returns the new quantity, zero meaning removal.
func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemQuantityCommand) setItemID(itemID int64) error {
	if itemID <= 0 {
		return errs.NewValueIsInvalidError("itemId")
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("cantidad")
	}
	c.quantity = quantity
	return nil
}
