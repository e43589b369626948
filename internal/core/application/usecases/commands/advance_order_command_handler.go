package commands

import (
	"context"
	"time"

	"compras/internal/pkg/metrics"
)

// AdvanceOrderCommandHandler applies the operator's production-line advance.
// Unlike set-state it refuses moves without a declared transition edge, so
// the operator UI cannot widen the workflow graph.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewAdvanceOrderCommandHandler creates a handler for operator advances.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, m *metrics.Metrics) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
		now:        time.Now,
	}
}

// Handle moves the order along a declared edge and appends the audit trail.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	o, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	result, err := advanceAndAudit(ctx, uow, o, advanceRequest{
		toCode:          cmd.ToCode(),
		note:            cmd.Note(),
		requireDeclared: true,
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
