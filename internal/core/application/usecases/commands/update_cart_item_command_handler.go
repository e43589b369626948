package commands

import (
	"context"
	"time"
)

// UpdateCartItemQuantityCommandHandler replaces or removes a cart line.
type UpdateCartItemQuantityCommandHandler struct {
	uowFactory CartUoWFactory
	now        func() time.Time
}

// NewUpdateCartItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartItemQuantityCommandHandler(uowFactory CartUoWFactory) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle sets the line's quantity, deleting the line when it reaches zero.
func (h *UpdateCartItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemQuantityCommand) error {
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

	cartRepo := uow.CartRepository()

	item, err := cartRepo.GetItemByID(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if cmd.Quantity() == 0 {
		if err = cartRepo.RemoveItem(ctx, item.ID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = item.SetQuantity(cmd.Quantity(), h.now()); err != nil {
		return err
	}
	if err = cartRepo.UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
