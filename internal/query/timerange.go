package query

import "time"

// DateRange resolves a time range into concrete [start, end) bounds relative
// to now. Quarter boundaries are calendar quarters. Unbounded ranges
// (all-time, custom) return ok=false.
func DateRange(tr TimeRange, now time.Time) (start, end time.Time, ok bool) {
	year, quarter := now.Year(), quarterOf(now)

	switch tr {
	case TimeRangeThisQuarter:
		return quarterBounds(year, quarter)

	case TimeRangeNextQuarter:
		next := (quarter + 1) % 4
		if next < quarter {
			year++
		}
		return quarterBounds(year, next)

	case TimeRangeLastQuarter:
		last := (quarter + 3) % 4
		if last > quarter {
			year--
		}
		return quarterBounds(year, last)

	case TimeRangeThisYear:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0), true

	case TimeRangeLast30Days:
		return now.AddDate(0, 0, -30), now, true

	case TimeRangeLast90Days:
		return now.AddDate(0, 0, -90), now, true
	}

	return time.Time{}, time.Time{}, false
}

// quarterOf returns the zero-based calendar quarter of t.
func quarterOf(t time.Time) int {
	return (int(t.Month()) - 1) / 3
}

func quarterBounds(year, quarter int) (time.Time, time.Time, bool) {
	start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
	if quarter == 3 {
		return start, time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return start, time.Date(year, time.Month(quarter*3+4), 1, 0, 0, 0, 0, time.UTC), true
}
