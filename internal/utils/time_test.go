package util

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTime_JSON(t *testing.T) {
	t.Run("RFC3339Input", func(t *testing.T) {
		var ldt LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-01T02:00:00Z"`), &ldt))

		out, err := json.Marshal(ldt)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-01T09:00:00"`, string(out))
	})

	t.Run("LocalInput", func(t *testing.T) {
		var ldt LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-01T09:00:00"`), &ldt))

		assert.True(t, ldt.Equal(time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC)))
	})

	t.Run("NullAndZero", func(t *testing.T) {
		var ldt LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &ldt))
		assert.True(t, ldt.IsZero())

		out, err := json.Marshal(ldt)
		require.NoError(t, err)
		assert.Equal(t, `null`, string(out))
	})
}

func TestLocalDateTime_Scan(t *testing.T) {
	var ldt LocalDateTime

	require.NoError(t, ldt.Scan(nil))
	assert.True(t, ldt.IsZero())

	require.NoError(t, ldt.Scan("2025-03-01T09:00:00"))
	assert.Equal(t, 2025, ldt.Year())

	assert.Error(t, ldt.Scan(42))

	v, err := LocalDateTime{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
