// Package ports defines repository interfaces for the order workflow domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"compras/internal/core/domain/model/workflow"
)

// WorkflowRepository is the persistence contract for workflow definitions:
// processes, their states and the declared transitions between them.
// Definitions are seed data; the only write this interface exposes is the
// lazy synthesis of a missing transition edge.
type WorkflowRepository interface {
	// GetProcessByCode retrieves a process by its code (e.g. "ORD").
	GetProcessByCode(ctx context.Context, code string) (*workflow.Process, error)

	// GetProcessByID retrieves a process by identifier.
	GetProcessByID(ctx context.Context, id int64) (*workflow.Process, error)

	// GetInitialState retrieves the process's single entry state.
	GetInitialState(ctx context.Context, processID int64) (*workflow.State, error)

	// GetStateByCode resolves a state of the process by its normalized code.
	GetStateByCode(ctx context.Context, processID int64, code string) (*workflow.State, error)

	// GetStateByID retrieves a state by identifier.
	GetStateByID(ctx context.Context, id int64) (*workflow.State, error)

	// FindTransition looks up the declared edge between two states of a
	// process. Returns errs.ObjectNotFoundError when no edge is declared.
	FindTransition(ctx context.Context, processID, fromID, toID int64) (*workflow.Transition, error)

	// EnsureTransition returns the declared edge between two states,
	// synthesizing and persisting it when missing. Repeated calls with the
	// same pair return the same edge; the edge count never shrinks.
	EnsureTransition(ctx context.Context, process *workflow.Process, from, to *workflow.State) (*workflow.Transition, error)
}
