package commands

import (
	"context"
	"time"
)

// AddOrderEventCommandHandler appends a manual event to an order's trail
// without changing its state. The history entry carries no acting user.
type AddOrderEventCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewAddOrderEventCommandHandler creates a handler for event-only appends.
func NewAddOrderEventCommandHandler(uowFactory OrderUoWFactory) AddOrderEventCommandHandler {
	return AddOrderEventCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle appends the event inside one transaction.
func (h *AddOrderEventCommandHandler) Handle(ctx context.Context, cmd AddOrderEventCommand) error {
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

	o, err := uow.OrderRepository().GetByFolio(ctx, cmd.Folio())
	if err != nil {
		return err
	}

	if err = appendEventOnly(ctx, uow, o, cmd.Note(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
