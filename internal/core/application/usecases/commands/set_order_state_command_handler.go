package commands

import (
	"context"
	"time"

	"compras/internal/pkg/metrics"
)

// SetOrderStateCommandHandler applies a state change requested through the
// administrative set-state operation. The acting user recorded in the audit
// trail is the order's owner, matching how the storefront invokes it.
type SetOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewSetOrderStateCommandHandler creates a handler for set-state operations.
func NewSetOrderStateCommandHandler(uowFactory OrderUoWFactory, m *metrics.Metrics) SetOrderStateCommandHandler {
	return SetOrderStateCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
		now:        time.Now,
	}
}

// Handle moves the order to the requested state and appends the audit trail.
// The transition edge is ensured, not required: a missing edge is synthesized
// inside the same transaction.
func (h *SetOrderStateCommandHandler) Handle(ctx context.Context, cmd SetOrderStateCommand) error {
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

	actor := o.UserID()
	result, err := advanceAndAudit(ctx, uow, o, advanceRequest{
		toCode: cmd.ToCode(),
		actor:  &actor,
		note:   cmd.Note(),
	}, h.now())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.TransitionsAppliedTotal.WithLabelValues(result.toState.Code()).Inc()
	return nil
}
