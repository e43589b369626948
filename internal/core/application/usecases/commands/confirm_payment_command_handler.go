package commands

import (
	"context"
	"time"

	"compras/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler records a payment attempt against an order:
// the Payment row, the order's payment status, and for cash the delivery's
// cash-collected timestamp.
type ConfirmPaymentCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory CourierUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle records the payment inside one transaction. The amount is always the
// order's total; partial payments are not modeled.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByFolio(ctx, cmd.Folio())
	if err != nil {
		return err
	}

	now := h.now()
	payment, err := order.NewPayment(o.ID(), cmd.Method(), cmd.Reference(), o.Total(), now)
	if err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, payment); err != nil {
		return err
	}

	if err = o.SetPaymentStatus(payment.Status(), now); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if cmd.Method() == order.PaymentMethodCash {
		deliveryRepo := uow.DeliveryRepository()
		dlv, err := deliveryRepo.EnsureForOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		dlv.MarkCashCollected(now)
		if err = deliveryRepo.Update(ctx, dlv); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
