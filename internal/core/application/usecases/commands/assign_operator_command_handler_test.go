package commands_test

import (
	"testing"

	"compras/internal/core/application/usecases/commands"
	"compras/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOperatorCommandHandler_Handle_Assign(t *testing.T) {
	ctx := t.Context()

	uow := NewMockAssignmentUoW()
	uow.expectTx(ctx)
	uow.assignments.On("Upsert", ctx, int64(100), int64(9)).Return(nil).Once()

	cmd, err := commands.NewAssignOperatorCommand(100, int64Ref(9))
	require.NoError(t, err)

	h := commands.NewAssignOperatorCommandHandler(&MockAssignmentUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assignments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOperatorCommandHandler_Handle_Clear(t *testing.T) {
	ctx := t.Context()

	uow := NewMockAssignmentUoW()
	uow.expectTx(ctx)
	uow.assignments.On("Delete", ctx, int64(100)).Return(nil).Once()

	cmd, err := commands.NewAssignOperatorCommand(100, nil)
	require.NoError(t, err)

	h := commands.NewAssignOperatorCommandHandler(&MockAssignmentUoWFactory{uow: uow})
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assignments.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	uow.assignments.AssertExpectations(t)
}

func TestNewAssignOperatorCommand_Invalid(t *testing.T) {
	_, err := commands.NewAssignOperatorCommand(0, int64Ref(9))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAssignOperatorCommand(100, int64Ref(0))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
