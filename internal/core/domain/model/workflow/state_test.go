package workflow_test

import (
	"testing"

	"compras/internal/core/domain/model/workflow"
	"compras/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreState(t *testing.T) {
	t.Run("valid_state", func(t *testing.T) {
		step := 1
		s, err := workflow.RestoreState(10, 1, "cre", "Creada", workflow.StateTypeInitial, &step)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(10), s.ID())
		assert.Equal(t, int64(1), s.ProcessID())
		assert.Equal(t, "CRE", s.Code(), "codes are normalized to upper case")
		assert.Equal(t, "Creada", s.Name())
		assert.True(t, s.IsInitial())
		assert.False(t, s.IsTerminal())
		require.NotNil(t, s.PublicStep())
		assert.Equal(t, 1, *s.PublicStep())
	})

	t.Run("terminal_state_without_public_step", func(t *testing.T) {
		s, err := workflow.RestoreState(13, 1, "DONE", "Entregada", workflow.StateTypeTerminal, nil)

		require.NoError(t, err)
		assert.True(t, s.IsTerminal())
		assert.Nil(t, s.PublicStep())
	})

	t.Run("invalid_type_flag", func(t *testing.T) {
		_, err := workflow.RestoreState(10, 1, "CRE", "Creada", workflow.StateType("X"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing_code", func(t *testing.T) {
		_, err := workflow.RestoreState(10, 1, "", "Creada", workflow.StateTypeOrdinary, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var s workflow.State
		assert.ErrorIs(t, s.Validate(), workflow.ErrStateIsNotConstructed)
	})
}

func TestNormalizeStateCode(t *testing.T) {
	assert.Equal(t, "PROC", workflow.NormalizeStateCode(" proc "))
	assert.Equal(t, "READY", workflow.NormalizeStateCode("Ready"))
}
