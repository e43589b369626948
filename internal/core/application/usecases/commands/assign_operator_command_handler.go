package commands

import (
	"context"
)

// AssignOperatorCommandHandler upserts or clears the order-to-operator
// assignment.
type AssignOperatorCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignOperatorCommandHandler creates a handler for operator assignment.
func NewAssignOperatorCommandHandler(uowFactory AssignmentUoWFactory) AssignOperatorCommandHandler {
	return AssignOperatorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the assignment change. Clearing an absent assignment
// succeeds; the operation is idempotent in both directions.
func (h *AssignOperatorCommandHandler) Handle(ctx context.Context, cmd AssignOperatorCommand) error {
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

	repo := uow.AssignmentRepository()
	if cmd.OperatorID() == nil {
		if err := repo.Delete(ctx, cmd.OrderID()); err != nil {
			return err
		}
	} else {
		if err := repo.Upsert(ctx, cmd.OrderID(), *cmd.OperatorID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
