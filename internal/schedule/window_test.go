package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowContains(t *testing.T) {
	now := time.Date(2024, 12, 14, 15, 30, 0, 0, time.UTC)
	w := Window{Days: 30}

	tests := []struct {
		date string
		want bool
	}{
		{"2024-12-14", true},  // today counts
		{"2024-12-15", true},
		{"2025-01-13", true},  // horizon, inclusive
		{"2025-01-14", false}, // one past the horizon
		{"2024-12-13", false}, // yesterday
	}
	for _, tc := range tests {
		got, err := w.Contains(tc.date, now)
		require.NoError(t, err, tc.date)
		assert.Equal(t, tc.want, got, tc.date)
	}
}

func TestWindowRejectsBadDate(t *testing.T) {
	_, err := Window{Days: 30}.Contains("12/15/2024", time.Now())
	var fErr *FormatError
	assert.ErrorAs(t, err, &fErr)
}
