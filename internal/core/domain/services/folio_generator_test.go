package services_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras/internal/core/domain/services"
)

func TestFolioGenerator_Next(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("suffix stays within bounds", func(t *testing.T) {
		gen := services.NewFolioGenerator(rand.NewSource(1))

		for i := 0; i < 1000; i++ {
			folio, err := gen.Next(at)
			require.NoError(t, err)
			assert.Regexp(t, `^20250601-\d{4}$`, folio.String())
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := services.NewFolioGenerator(rand.NewSource(42))
		b := services.NewFolioGenerator(rand.NewSource(42))

		fa, err := a.Next(at)
		require.NoError(t, err)
		fb, err := b.Next(at)
		require.NoError(t, err)

		assert.True(t, fa.IsEqual(fb))
	})
}
