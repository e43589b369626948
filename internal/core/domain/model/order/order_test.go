package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras/internal/core/domain/model/workflow"
)

func orderFixtures(t *testing.T) (*workflow.Process, *workflow.State, *workflow.State) {
	t.Helper()

	process, err := workflow.RestoreProcess(1, workflow.ProcessCodeOrders, "Pedidos")
	require.NoError(t, err)

	stepOne := 1
	created, err := workflow.RestoreState(10, 1, workflow.StateCodeCreated, "Creada", workflow.StateTypeInitial, &stepOne)
	require.NoError(t, err)

	stepTwo := 2
	processing, err := workflow.RestoreState(11, 1, workflow.StateCodeProcessing, "En proceso", workflow.StateTypeOrdinary, &stepTwo)
	require.NoError(t, err)

	return process, created, processing
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	process, created, processing := orderFixtures(t)
	folio, err := NewFolio(now, 4821)
	require.NoError(t, err)
	total := decimal.RequireFromString("499.00")

	t.Run("starts in the initial state", func(t *testing.T) {
		o, err := NewOrder(7, folio, total, process, created, PaymentMethodCash, nil, nil, "tok-1", now)
		require.NoError(t, err)

		assert.Zero(t, o.ID())
		assert.Equal(t, created.ID(), o.CurrentStateID())
		assert.Equal(t, workflow.StateCodeCreated, o.CurrentStateCode())
		assert.Equal(t, PaymentStatusPending, o.PaymentStatus())
		assert.Equal(t, "ORD-"+folio.String(), o.QRText())
		assert.Equal(t, "tok-1", o.QRToken())
	})

	t.Run("rejects non-initial entry state", func(t *testing.T) {
		_, err := NewOrder(7, folio, total, process, processing, PaymentMethodCash, nil, nil, "tok-1", now)
		assert.Error(t, err)
	})

	t.Run("rejects state of another process", func(t *testing.T) {
		foreign, err := workflow.RestoreState(99, 2, "CRE", "Creada", workflow.StateTypeInitial, nil)
		require.NoError(t, err)

		_, err = NewOrder(7, folio, total, process, foreign, PaymentMethodCash, nil, nil, "tok-1", now)
		assert.Error(t, err)
	})

	t.Run("rejects transfer at checkout", func(t *testing.T) {
		_, err := NewOrder(7, folio, total, process, created, PaymentMethodTransfer, nil, nil, "tok-1", now)
		assert.Error(t, err)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		_, err := NewOrder(7, folio, decimal.NewFromInt(-1), process, created, PaymentMethodCash, nil, nil, "tok-1", now)
		assert.Error(t, err)
	})
}

func TestOrder_MoveTo(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	process, created, processing := orderFixtures(t)
	folio, err := NewFolio(now, 4821)
	require.NoError(t, err)

	newOrder := func(t *testing.T) *Order {
		o, err := NewOrder(7, folio, decimal.NewFromInt(100), process, created, PaymentMethodCash, nil, nil, "tok", now)
		require.NoError(t, err)
		return o
	}

	t.Run("moves the current state pointer", func(t *testing.T) {
		o := newOrder(t)
		later := now.Add(time.Minute)

		require.NoError(t, o.MoveTo(processing, later))

		assert.Equal(t, processing.ID(), o.CurrentStateID())
		assert.Equal(t, workflow.StateCodeProcessing, o.CurrentStateCode())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("reflexive move is allowed", func(t *testing.T) {
		o := newOrder(t)
		assert.NoError(t, o.MoveTo(created, now.Add(time.Minute)))
	})

	t.Run("rejects state of another process", func(t *testing.T) {
		o := newOrder(t)
		foreign, err := workflow.RestoreState(99, 2, "PROC", "En proceso", workflow.StateTypeOrdinary, nil)
		require.NoError(t, err)

		assert.Error(t, o.MoveTo(foreign, now))
	})
}

func TestOrder_IsInState(t *testing.T) {
	now := time.Now()
	process, created, _ := orderFixtures(t)
	folio, err := NewFolio(now, 4821)
	require.NoError(t, err)

	o, err := NewOrder(7, folio, decimal.NewFromInt(100), process, created, PaymentMethodCash, nil, nil, "tok", now)
	require.NoError(t, err)

	assert.True(t, o.IsInState("cre"))
	assert.False(t, o.IsInState(workflow.StateCodeReady))
}

func TestOrder_AssignID(t *testing.T) {
	now := time.Now()
	process, created, _ := orderFixtures(t)
	folio, err := NewFolio(now, 4821)
	require.NoError(t, err)

	o, err := NewOrder(7, folio, decimal.NewFromInt(100), process, created, PaymentMethodCash, nil, nil, "tok", now)
	require.NoError(t, err)

	require.NoError(t, o.AssignID(55))
	assert.Equal(t, int64(55), o.ID())
	assert.Error(t, o.AssignID(56))
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()
	folio, err := ParseFolio("20250601-4821")
	require.NoError(t, err)

	t.Run("normalizes the loaded state code", func(t *testing.T) {
		o, err := RestoreOrder(1, 7, folio, decimal.NewFromInt(100), 1, 10, "ready",
			PaymentMethodCard, PaymentStatusAuthorized, nil, nil, "ORD-20250601-4821", "tok", now, now)
		require.NoError(t, err)

		assert.True(t, o.IsInState(workflow.StateCodeReady))
	})

	t.Run("rejects unknown payment status", func(t *testing.T) {
		_, err := RestoreOrder(1, 7, folio, decimal.NewFromInt(100), 1, 10, "READY",
			PaymentMethodCard, PaymentStatus("regalado"), nil, nil, "", "tok", now, now)
		assert.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var zero Order
	assert.ErrorIs(t, zero.Validate(), ErrOrderIsNotConstructed)
}
