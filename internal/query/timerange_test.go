package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangeQuarters(t *testing.T) {
	// Mid Q2 2024.
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange TimeRange
		start     time.Time
		end       time.Time
	}{
		{"this quarter", TimeRangeThisQuarter,
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"next quarter", TimeRangeNextQuarter,
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"last quarter", TimeRangeLastQuarter,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := DateRange(tt.timeRange, now)
			require.True(t, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestDateRangeYearBoundaries(t *testing.T) {
	// Q4: next quarter rolls into the following year.
	q4 := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	start, end, ok := DateRange(TimeRangeNextQuarter, q4)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)

	// Q4 itself ends at the next year's January 1st.
	start, end, ok = DateRange(TimeRangeThisQuarter, q4)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)

	// Q1: last quarter reaches back into the previous year.
	q1 := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	start, end, ok = DateRange(TimeRangeLastQuarter, q1)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateRangeRollingWindows(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	start, end, ok := DateRange(TimeRangeLast30Days, now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -30), start)
	assert.Equal(t, now, end)

	start, _, ok = DateRange(TimeRangeLast90Days, now)
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -90), start)
}

func TestDateRangeThisYear(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	start, end, ok := DateRange(TimeRangeThisYear, now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateRangeUnbounded(t *testing.T) {
	now := time.Now()
	for _, tr := range []TimeRange{TimeRangeAllTime, TimeRangeCustom} {
		_, _, ok := DateRange(tr, now)
		assert.False(t, ok, string(tr))
	}
}
