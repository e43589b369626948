package commands

import (
	"errors"

	"compras/internal/core/domain/model/order"
	"compras/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records a courier-reported payment against an order.
// Unlike checkout, all three methods are legal here: transfers only happen on
// collection. No payment gateway is involved; the outcome is self-reported.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	folio     order.Folio
	method    order.PaymentMethod
	reference *string

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates the command, validating folio and method.
func NewConfirmPaymentCommand(folio, method string, reference *string) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFolio(folio),
		cmd.setMethod(method),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}
	cmd.reference = reference

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// Folio returns the order's folio.
func (c ConfirmPaymentCommand) Folio() order.Folio {
	return c.folio
}

// Method returns the reported payment method.
func (c ConfirmPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Reference returns the provider reference, nil when none was reported.
func (c ConfirmPaymentCommand) Reference() *string {
	return c.reference
}

func (c *ConfirmPaymentCommand) setFolio(raw string) error {
	folio, err := order.ParseFolio(raw)
	if err != nil {
		return err
	}
	c.folio = folio
	return nil
}

func (c *ConfirmPaymentCommand) setMethod(raw string) error {
	method, err := order.ParsePaymentMethod(raw)
	if err != nil {
		return err
	}
	c.method = method
	return nil
}
