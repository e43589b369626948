package commands

import (
	"context"
	"errors"

	"compras/internal/pkg/errs"
	"compras/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand deletes a cart line outright.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	itemID int64

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates the command.
func NewRemoveCartItemCommand(itemID int64) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if itemID <= 0 {
		return RemoveCartItemCommand{}, errs.NewValueIsInvalidError("itemId")
	}
	cmd.itemID = itemID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// ItemID returns the cart line's identifier.
func (c RemoveCartItemCommand) ItemID() int64 {
	return c.itemID
}

// RemoveCartItemCommandHandler deletes a cart line.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the line inside one transaction.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().RemoveItem(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
