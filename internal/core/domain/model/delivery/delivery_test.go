package delivery

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		d, err := NewDelivery(42)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, d.Status())
		assert.Equal(t, int64(42), d.OrderID())
		assert.Zero(t, d.ID())
		assert.Nil(t, d.CourierID())
		assert.Nil(t, d.DeliveredAt())
	})

	t.Run("rejects missing order id", func(t *testing.T) {
		_, err := NewDelivery(0)
		assert.Error(t, err)
	})
}

func TestDelivery_MarkEnRoute(t *testing.T) {
	t.Run("moves pending to en route and records courier", func(t *testing.T) {
		d, err := NewDelivery(1)
		require.NoError(t, err)

		courier := int64(7)
		require.NoError(t, d.MarkEnRoute(&courier))

		assert.Equal(t, StatusEnRoute, d.Status())
		require.NotNil(t, d.CourierID())
		assert.Equal(t, int64(7), *d.CourierID())
	})

	t.Run("repeat confirm keeps previous courier when none given", func(t *testing.T) {
		d, err := NewDelivery(1)
		require.NoError(t, err)

		courier := int64(7)
		require.NoError(t, d.MarkEnRoute(&courier))
		require.NoError(t, d.MarkEnRoute(nil))

		assert.Equal(t, StatusEnRoute, d.Status())
		require.NotNil(t, d.CourierID())
		assert.Equal(t, int64(7), *d.CourierID())
	})

	t.Run("rejected once delivered", func(t *testing.T) {
		d, err := NewDelivery(1)
		require.NoError(t, err)
		require.NoError(t, d.MarkDelivered(time.Now()))

		assert.Error(t, d.MarkEnRoute(nil))
	})
}

func TestDelivery_MarkDelivered(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("stamps completion time", func(t *testing.T) {
		d, err := NewDelivery(1)
		require.NoError(t, err)

		require.NoError(t, d.MarkDelivered(now))

		assert.Equal(t, StatusDelivered, d.Status())
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, now, *d.DeliveredAt())
	})

	t.Run("cannot finish twice", func(t *testing.T) {
		d, err := NewDelivery(1)
		require.NoError(t, err)
		require.NoError(t, d.MarkDelivered(now))

		assert.Error(t, d.MarkDelivered(now.Add(time.Minute)))
	})
}

func TestDelivery_MarkCashCollected(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	d, err := NewDelivery(1)
	require.NoError(t, err)

	d.MarkCashCollected(now)

	require.NotNil(t, d.CashCollectedAt())
	assert.Equal(t, now, *d.CashCollectedAt())
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("rebuilds persisted state", func(t *testing.T) {
		courier := int64(9)
		delivered := time.Now()

		d, err := RestoreDelivery(3, 42, StatusDelivered, &courier, nil, &delivered)
		require.NoError(t, err)

		assert.Equal(t, int64(3), d.ID())
		assert.Equal(t, StatusDelivered, d.Status())
		assert.NoError(t, d.Validate())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := RestoreDelivery(3, 42, Status("perdido"), nil, nil, nil)
		assert.Error(t, err)
	})
}

func TestDelivery_AssignID(t *testing.T) {
	d, err := NewDelivery(1)
	require.NoError(t, err)

	require.NoError(t, d.AssignID(10))
	assert.Equal(t, int64(10), d.ID())
	assert.Error(t, d.AssignID(11))
}

func TestDelivery_Validate(t *testing.T) {
	var zero Delivery
	assert.ErrorIs(t, zero.Validate(), ErrDeliveryIsNotConstructed)
}

func TestNewEvent(t *testing.T) {
	now := time.Now()

	t.Run("with coordinates", func(t *testing.T) {
		lat := decimal.NewFromFloat(19.4326)
		lng := decimal.NewFromFloat(-99.1332)

		e, err := NewEvent(5, 11, &lat, &lng, now)
		require.NoError(t, err)

		assert.Equal(t, int64(5), e.DeliveryID())
		assert.Equal(t, int64(11), e.StateID())
		assert.True(t, e.Lat().Equal(lat))
		assert.True(t, e.Lng().Equal(lng))
		assert.Equal(t, now, e.CreatedAt())
	})

	t.Run("without coordinates", func(t *testing.T) {
		e, err := NewEvent(5, 11, nil, nil, now)
		require.NoError(t, err)
		assert.Nil(t, e.Lat())
		assert.Nil(t, e.Lng())
	})

	t.Run("rejects missing state reference", func(t *testing.T) {
		_, err := NewEvent(5, 0, nil, nil, now)
		assert.Error(t, err)
	})
}
