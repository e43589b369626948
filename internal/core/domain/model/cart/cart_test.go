package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCart(t *testing.T) {
	now := time.Now()

	t.Run("opens empty", func(t *testing.T) {
		c, err := NewCart(1, now)
		require.NoError(t, err)
		assert.True(t, c.IsOpen())
		assert.Empty(t, c.Items())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := NewCart(0, now)
		assert.Error(t, err)
	})
}

func TestCart_Close(t *testing.T) {
	now := time.Now()

	t.Run("closes an open cart", func(t *testing.T) {
		c, err := NewCart(1, now)
		require.NoError(t, err)

		later := now.Add(time.Minute)
		require.NoError(t, c.Close(later))

		assert.Equal(t, StatusClosed, c.Status())
		assert.False(t, c.IsOpen())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("closing twice is rejected", func(t *testing.T) {
		c, err := NewCart(1, now)
		require.NoError(t, err)
		require.NoError(t, c.Close(now))

		assert.Error(t, c.Close(now))
	})
}

func TestCart_ItemByProduct(t *testing.T) {
	now := time.Now()
	price := decimal.NewFromInt(150)

	itemA, err := RestoreItem(1, 10, 100, 2, price, now, now)
	require.NoError(t, err)
	itemB, err := RestoreItem(2, 10, 200, 1, price, now, now)
	require.NoError(t, err)

	c, err := RestoreCart(10, 1, StatusOpen, now, now, []*Item{itemA, itemB})
	require.NoError(t, err)

	assert.Same(t, itemB, c.ItemByProduct(200))
	assert.Nil(t, c.ItemByProduct(999))
}

func TestItem_Subtotal(t *testing.T) {
	now := time.Now()

	i, err := NewItem(10, 100, 3, decimal.RequireFromString("149.90"), now)
	require.NoError(t, err)

	assert.True(t, i.Subtotal().Equal(decimal.RequireFromString("449.70")))
}

func TestItem_Quantities(t *testing.T) {
	now := time.Now()

	t.Run("add merges", func(t *testing.T) {
		i, err := NewItem(10, 100, 2, decimal.NewFromInt(50), now)
		require.NoError(t, err)

		require.NoError(t, i.AddQuantity(3, now))
		assert.Equal(t, 5, i.Quantity())
	})

	t.Run("set replaces", func(t *testing.T) {
		i, err := NewItem(10, 100, 2, decimal.NewFromInt(50), now)
		require.NoError(t, err)

		require.NoError(t, i.SetQuantity(7, now))
		assert.Equal(t, 7, i.Quantity())
	})

	t.Run("zero and negative are rejected", func(t *testing.T) {
		i, err := NewItem(10, 100, 2, decimal.NewFromInt(50), now)
		require.NoError(t, err)

		assert.Error(t, i.SetQuantity(0, now))
		assert.Error(t, i.AddQuantity(-1, now))
	})
}

func TestNewItem_Validation(t *testing.T) {
	now := time.Now()

	_, err := NewItem(10, 100, 0, decimal.NewFromInt(50), now)
	assert.Error(t, err)

	_, err = NewItem(10, 100, 1, decimal.NewFromInt(-1), now)
	assert.Error(t, err)
}
