package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDate(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		got, err := optionalDate("", created)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("bare date on the creation day resolves to the creation time", func(t *testing.T) {
		got, err := optionalDate("2025-03-01", created)
		require.NoError(t, err)
		assert.True(t, created.Equal(*got))
	})

	t.Run("bare date on a later day is midnight", func(t *testing.T) {
		got, err := optionalDate("2025-03-02", created)
		require.NoError(t, err)
		assert.True(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC).Equal(*got))
	})

	t.Run("rfc3339 is taken as is", func(t *testing.T) {
		got, err := optionalDate("2025-03-01T08:00:00Z", created)
		require.NoError(t, err)
		assert.True(t, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC).Equal(*got))
	})

	t.Run("unknown task keeps midnight", func(t *testing.T) {
		got, err := optionalDate("2025-03-01", time.Time{})
		require.NoError(t, err)
		assert.True(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Equal(*got))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := optionalDate("03/01/2025", created)
		assert.Error(t, err)
	})
}
