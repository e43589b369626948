package commands

import (
	"context"
	"time"

	"compras/internal/core/domain/model/workflow"
)

// ConfirmReceivedCommandHandler moves an order's delivery to en_ruta when a
// courier confirms pickup. The order itself stays in READY; only the delivery
// sub-state changes.
type ConfirmReceivedCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewConfirmReceivedCommandHandler creates a handler for pickup confirmations.
func NewConfirmReceivedCommandHandler(uowFactory CourierUoWFactory) ConfirmReceivedCommandHandler {
	return ConfirmReceivedCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle verifies the order sits in READY, then upserts its delivery to
// en_ruta. The delivery row is untouched when the precondition fails.
func (h *ConfirmReceivedCommandHandler) Handle(ctx context.Context, cmd ConfirmReceivedCommand) error {
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

	if err = RequireState(workflow.StateCodeReady)(o); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	dlv, err := deliveryRepo.EnsureForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if err = dlv.MarkEnRoute(cmd.CourierUserID()); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, dlv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
