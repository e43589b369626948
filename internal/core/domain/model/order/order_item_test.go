package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras/internal/core/domain/model/personalization"
)

func TestNewOrderItem(t *testing.T) {
	t.Run("creates a line without personalizations", func(t *testing.T) {
		i, err := NewOrderItem(1, 100, 2, decimal.RequireFromString("149.90"))
		require.NoError(t, err)

		assert.Nil(t, i.PersonalizationID(personalization.SideA))
		assert.Nil(t, i.PersonalizationID(personalization.SideB))
		assert.True(t, i.Subtotal().Equal(decimal.RequireFromString("299.80")))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrderItem(1, 100, 0, decimal.NewFromInt(10))
		assert.Error(t, err)
	})
}

func TestOrderItem_SetPersonalization(t *testing.T) {
	i, err := NewOrderItem(1, 100, 1, decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, i.SetPersonalization(personalization.SideA, 31))
	require.NoError(t, i.SetPersonalization(personalization.SideB, 32))

	require.NotNil(t, i.PersonalizationID(personalization.SideA))
	assert.Equal(t, int64(31), *i.PersonalizationID(personalization.SideA))
	require.NotNil(t, i.PersonalizationID(personalization.SideB))
	assert.Equal(t, int64(32), *i.PersonalizationID(personalization.SideB))

	assert.Error(t, i.SetPersonalization(personalization.SideA, 0))
}
