package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		expected  DateRange
		expectErr bool
	}{
		{
			name:  "Plain dates cover the whole end day",
			start: "2020-08-10",
			end:   "2020-08-15",
			expected: DateRange{
				Start: time.Date(2020, 8, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 8, 15, 23, 59, 59, 999999999, time.UTC),
			},
		},
		{
			name:  "RFC3339 bounds are kept as is",
			start: "2020-08-10T10:00:00Z",
			end:   "2020-08-15T12:30:00Z",
			expected: DateRange{
				Start: time.Date(2020, 8, 10, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2020, 8, 15, 12, 30, 0, 0, time.UTC),
			},
		},
		{name: "Missing start", start: "", end: "2020-08-15", expectErr: true},
		{name: "Missing end", start: "2020-08-10", end: " ", expectErr: true},
		{name: "Garbage", start: "yesterday", end: "2020-08-15", expectErr: true},
		{name: "Start after end", start: "2020-08-16", end: "2020-08-15", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ParseDateRange(tt.start, tt.end)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Start.Equal(period.Start))
			assert.True(t, tt.expected.End.Equal(period.End))
		})
	}
}

func TestParseDateRange_WholeEndDay(t *testing.T) {
	period, err := ParseDateRange("2020-08-15", "2020-08-15")
	require.NoError(t, err)

	assert.False(t, period.End.Before(time.Date(2020, 8, 15, 23, 59, 59, 0, time.UTC)))
	assert.True(t, period.End.Before(time.Date(2020, 8, 16, 0, 0, 0, 0, time.UTC)))
}
