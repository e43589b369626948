package commands

import (
	"errors"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts a product into the user's open cart, opening a
// fresh cart when none exists. Repeat adds of the same product merge into the
// existing line.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID    int64
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates the command.
func NewAddCartItemCommand(userID, productID int64, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c AddCartItemCommand) UserID() int64 {
	return c.userID
}

// ProductID returns the product to add.
func (c AddCartItemCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("usuarioId")
	}
	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidError("productoId")
	}
	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("cantidad")
	}
	c.quantity = quantity
	return nil
}
