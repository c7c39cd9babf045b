package nutrition

import "time"

// Day truncates a timestamp to midnight in its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ClampDay keeps a selected day inside [earliest, latest]. The bounds are
// truncated to midnight before comparing.
func ClampDay(day, earliest, latest time.Time) time.Time {
	day = Day(day)
	earliest = Day(earliest)
	latest = Day(latest)
	if day.Before(earliest) {
		return earliest
	}
	if day.After(latest) {
		return latest
	}
	return day
}

// ShiftDay moves a selected day by a number of days and clamps the result to
// [earliest, latest], so date navigation never leaves the tracked range.
func ShiftDay(day time.Time, days int, earliest, latest time.Time) time.Time {
	return ClampDay(Day(day).AddDate(0, 0, days), earliest, latest)
}
