package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"compras/internal/core/domain/model/delivery"
	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"
)

// Precondition inspects the loaded order before a transition is applied.
// Returning an error aborts the advance without touching the database.
type Precondition func(o *order.Order) error

// RequireState returns a precondition that demands the order currently sit in
// the given state code.
func RequireState(code string) Precondition {
	return func(o *order.Order) error {
		if !o.IsInState(code) {
			return errs.NewInvalidStateForActionError(
				fmt.Sprintf("requires state %s", workflow.NormalizeStateCode(code)),
				o.CurrentStateCode())
		}
		return nil
	}
}

// advanceRequest describes one advance-and-audit pass over an order.
type advanceRequest struct {
	toCode string
	actor  *int64
	note   string

	// precondition runs against the loaded order before anything is written.
	precondition Precondition

	// requireDeclared restricts the move to edges already present in the
	// transition table instead of synthesizing missing ones.
	requireDeclared bool
}

// advanceResult reports what an advance recorded.
type advanceResult struct {
	order      *order.Order
	toState    *workflow.State
	transition *workflow.Transition
	delivery   *delivery.Delivery
}

// advanceAndAudit is the single implementation of "move an order to a state".
// Every path that changes an order's state (set-state, operator advance,
// delivery finish) funnels through it, so the side effects stay in lockstep:
// resolve the target symbolically by code, ensure (or require) the transition
// edge, move the pointer, ensure the delivery row, append a delivery event and
// a history entry.
//
// The caller owns the transaction. advanceAndAudit never commits or rolls
// back.
func advanceAndAudit(ctx context.Context, uow OrderUoW, o *order.Order, req advanceRequest, now time.Time) (*advanceResult, error) {
	wf := uow.WorkflowRepository()

	process, err := wf.GetProcessByID(ctx, o.ProcessID())
	if err != nil {
		return nil, err
	}

	toState, err := wf.GetStateByCode(ctx, process.ID(), req.toCode)
	if err != nil {
		return nil, err
	}

	if req.precondition != nil {
		if err = req.precondition(o); err != nil {
			return nil, err
		}
	}

	fromState, err := wf.GetStateByID(ctx, o.CurrentStateID())
	if err != nil {
		return nil, err
	}

	var transition *workflow.Transition
	if req.requireDeclared {
		transition, err = wf.FindTransition(ctx, process.ID(), fromState.ID(), toState.ID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewInvalidStateForActionError(
					fmt.Sprintf("move to %s", toState.Code()), fromState.Code())
			}
			return nil, err
		}
	} else {
		transition, err = wf.EnsureTransition(ctx, process, fromState, toState)
		if err != nil {
			return nil, err
		}
	}

	if err = o.MoveTo(toState, now); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	dlv, err := appendDeliveryEvent(ctx, uow, o.ID(), toState.ID(), now)
	if err != nil {
		return nil, err
	}

	note := req.note
	if note == "" {
		note = order.HistoryNoteStateChange(toState.Code())
	}
	transitionID := transition.ID()
	entry, err := order.NewHistoryEntry(o.ID(), &transitionID, toState.ID(), req.actor, note, now)
	if err != nil {
		return nil, err
	}
	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return nil, err
	}

	return &advanceResult{order: o, toState: toState, transition: transition, delivery: dlv}, nil
}

// appendEventOnly records a manual note against an order without moving its
// state: a reflexive transition is ensured, a delivery event referencing the
// current state is appended, and a history entry is written with a nil actor.
func appendEventOnly(ctx context.Context, uow OrderUoW, o *order.Order, note string, now time.Time) error {
	wf := uow.WorkflowRepository()

	process, err := wf.GetProcessByID(ctx, o.ProcessID())
	if err != nil {
		return err
	}
	current, err := wf.GetStateByID(ctx, o.CurrentStateID())
	if err != nil {
		return err
	}

	transition, err := wf.EnsureTransition(ctx, process, current, current)
	if err != nil {
		return err
	}

	if _, err = appendDeliveryEvent(ctx, uow, o.ID(), current.ID(), now); err != nil {
		return err
	}

	if note == "" {
		note = order.HistoryNoteManualEvent
	}
	transitionID := transition.ID()
	entry, err := order.NewHistoryEntry(o.ID(), &transitionID, current.ID(), nil, note, now)
	if err != nil {
		return err
	}
	return uow.HistoryRepository().Append(ctx, entry)
}

// appendDeliveryEvent ensures the order's delivery row exists and appends one
// breadcrumb referencing the given state.
func appendDeliveryEvent(ctx context.Context, uow DeliveryRepoFactory, orderID, stateID int64, now time.Time) (*delivery.Delivery, error) {
	repo := uow.DeliveryRepository()

	dlv, err := repo.EnsureForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	event, err := delivery.NewEvent(dlv.ID(), stateID, nil, nil, now)
	if err != nil {
		return nil, err
	}
	if err = repo.AddEvent(ctx, event); err != nil {
		return nil, err
	}
	return dlv, nil
}
