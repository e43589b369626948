package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutAddress carries the optional delivery address captured at checkout.
type CheckoutAddress struct {
	Description     *string
	ContactName     *string
	Phone           *string
	AreaID          *int64
	DeliveryPointID *int64
}

// CheckoutCommand turns a user's open cart into orders, one per cart line.
//
// The draft-item hint covers the "shop direct" path where a personalization
// was built against a draft cart item that never joined the cart: the copier
// falls back to it when a line has no personalizations of its own.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	method      order.PaymentMethod
	address     *CheckoutAddress
	draftItemID *int64

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates the command, validating the user and that the
// payment method is one the storefront accepts at checkout.
func NewCheckoutCommand(userID int64, method string, address *CheckoutAddress, draftItemID *int64) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setMethod(method),
	); err != nil {
		return CheckoutCommand{}, err
	}
	cmd.address = address
	cmd.draftItemID = draftItemID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// UserID returns the buying user's identifier.
func (c CheckoutCommand) UserID() int64 {
	return c.userID
}

// Method returns the validated payment method.
func (c CheckoutCommand) Method() order.PaymentMethod {
	return c.method
}

// Address returns the optional delivery address, nil when none was given.
func (c CheckoutCommand) Address() *CheckoutAddress {
	return c.address
}

// DraftItemID returns the optional draft-item hint for the copier.
func (c CheckoutCommand) DraftItemID() *int64 {
	return c.draftItemID
}

func (c *CheckoutCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidError("usuarioId")
	}
	c.userID = userID
	return nil
}

func (c *CheckoutCommand) setMethod(raw string) error {
	method, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}
	if err = method.ValidateForCheckout(); err != nil {
		return err
	}
	c.method = method
	return nil
}
