package workflowrepo

import (
	"context"
	"errors"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkflowRepository implements WorkflowRepository using GORM.
// Definitions are seed data; the only write is the lazy synthesis of a
// missing transition edge.
type GormWorkflowRepository struct {
	db *gorm.DB
}

// NewGormWorkflowRepository creates a new GORM workflow repository.
func NewGormWorkflowRepository(db *gorm.DB) *GormWorkflowRepository {
	return &GormWorkflowRepository{db: db}
}

// GetProcessByCode retrieves a process by its code.
func (r *GormWorkflowRepository) GetProcessByCode(ctx context.Context, code string) (*workflow.Process, error) {
	var dto ProcessDTO
	if err := r.db.WithContext(ctx).First(&dto, "codigo = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proceso", code)
		}
		return nil, err
	}

	return processToDomain(dto)
}

// GetProcessByID retrieves a process by identifier.
func (r *GormWorkflowRepository) GetProcessByID(ctx context.Context, id int64) (*workflow.Process, error) {
	var dto ProcessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proceso", id)
		}
		return nil, err
	}

	return processToDomain(dto)
}

// GetInitialState retrieves the process's single entry state.
func (r *GormWorkflowRepository) GetInitialState(ctx context.Context, processID int64) (*workflow.State, error) {
	var dto StateDTO
	err := r.db.WithContext(ctx).
		Where("proceso_id = ? AND tipo = ?", processID, string(workflow.StateTypeInitial)).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estado inicial", processID)
		}
		return nil, err
	}

	return stateToDomain(dto)
}

// GetStateByCode resolves a state of the process by its normalized code.
func (r *GormWorkflowRepository) GetStateByCode(ctx context.Context, processID int64, code string) (*workflow.State, error) {
	var dto StateDTO
	err := r.db.WithContext(ctx).
		Where("proceso_id = ? AND codigo = ?", processID, workflow.NormalizeStateCode(code)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estado", code)
		}
		return nil, err
	}

	return stateToDomain(dto)
}

// GetStateByID retrieves a state by identifier.
func (r *GormWorkflowRepository) GetStateByID(ctx context.Context, id int64) (*workflow.State, error) {
	var dto StateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estado", id)
		}
		return nil, err
	}

	return stateToDomain(dto)
}

// FindTransition looks up the declared edge between two states of a process.
func (r *GormWorkflowRepository) FindTransition(ctx context.Context, processID, fromID, toID int64) (*workflow.Transition, error) {
	var dto TransitionDTO
	err := r.db.WithContext(ctx).
		Where("proceso_id = ? AND estado_desde_id = ? AND estado_hasta_id = ?", processID, fromID, toID).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transicion", processID)
		}
		return nil, err
	}

	return transitionToDomain(dto)
}

// EnsureTransition returns the declared edge between two states, synthesizing
// and persisting it when missing. The edge is looked up again after a failed
// insert so two executors synthesizing the same edge converge on one row.
func (r *GormWorkflowRepository) EnsureTransition(ctx context.Context, process *workflow.Process, from, to *workflow.State) (*workflow.Transition, error) {
	existing, err := r.FindTransition(ctx, process.ID(), from.ID(), to.ID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	synthesized, err := workflow.NewTransition(process, from, to)
	if err != nil {
		return nil, err
	}

	dto := transitionFromDomain(synthesized)
	if createErr := r.db.WithContext(ctx).Create(&dto).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return r.FindTransition(ctx, process.ID(), from.ID(), to.ID())
		}
		return nil, createErr
	}

	if err := synthesized.AssignID(dto.ID); err != nil {
		return nil, err
	}
	return synthesized, nil
}
