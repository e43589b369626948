package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFolio(t *testing.T) {
	at := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

	t.Run("formats date and suffix", func(t *testing.T) {
		f, err := NewFolio(at, 4821)
		require.NoError(t, err)
		assert.Equal(t, "20250601-4821", f.String())
	})

	t.Run("uses UTC date", func(t *testing.T) {
		loc := time.FixedZone("UTC-6", -6*3600)
		local := time.Date(2025, 6, 1, 22, 0, 0, 0, loc)

		f, err := NewFolio(local, 1000)
		require.NoError(t, err)
		assert.Equal(t, "20250602-1000", f.String())
	})

	t.Run("rejects suffix outside bounds", func(t *testing.T) {
		_, err := NewFolio(at, 999)
		assert.Error(t, err)

		_, err = NewFolio(at, 10000)
		assert.Error(t, err)
	})
}

func TestParseFolio(t *testing.T) {
	t.Run("accepts well-formed folios", func(t *testing.T) {
		f, err := ParseFolio("20250601-4821")
		require.NoError(t, err)
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"", "20250601", "20250601-482", "2025061-4821", "folio"} {
			_, err := ParseFolio(raw)
			assert.Error(t, err, raw)
		}
	})
}

func TestFolio_QRText(t *testing.T) {
	f, err := ParseFolio("20250601-4821")
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250601-4821", f.QRText())
}
