package commands

import (
	"context"
	"time"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/metrics"
)

// FinishDeliveryCommandHandler completes a delivery. The target state is
// resolved symbolically by code within the order's process; nothing depends
// on the numeric identifiers the seed data happened to assign.
type FinishDeliveryCommandHandler struct {
	uowFactory CourierUoWFactory
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewFinishDeliveryCommandHandler creates a handler for delivery completion.
func NewFinishDeliveryCommandHandler(uowFactory CourierUoWFactory, m *metrics.Metrics) FinishDeliveryCommandHandler {
	return FinishDeliveryCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
		now:        time.Now,
	}
}

// Handle advances the order to DONE through the shared advance-and-audit
// path, then stamps the delivery entregado, all in one transaction.
func (h *FinishDeliveryCommandHandler) Handle(ctx context.Context, cmd FinishDeliveryCommand) error {
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

	now := h.now()
	result, err := advanceAndAudit(ctx, uow, o, advanceRequest{
		toCode: workflow.StateCodeDone,
		// Completion only travels the declared READY->DONE edge; a process
		// missing it is mis-seeded and must not gain one here.
		requireDeclared: true,
	}, now)
	if err != nil {
		return err
	}

	dlv := result.delivery
	if err = dlv.MarkDelivered(now); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, dlv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.DeliveriesCompletedTotal.Inc()
	h.metrics.TransitionsAppliedTotal.WithLabelValues(result.toState.Code()).Inc()
	return nil
}
