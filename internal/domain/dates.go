package domain

import (
	"fmt"
	"time"
)

// isoTimestampFormat is the upstream wire format for date-range bounds:
// full ISO-8601 timestamps at UTC midnight.
const isoTimestampFormat = "2006-01-02T15:04:05.000Z"

// DateMode selects how the requested date range is interpreted.
type DateMode string

// Available date modes.
const (
	// DateModeFlexible treats nights-within-range as acceptable and is
	// partitioned into one window per calendar month for upstream querying.
	DateModeFlexible DateMode = "flexible"

	// DateModeExact requires the literal requested date range.
	DateModeExact DateMode = "exact"
)

// IsValid checks if the date mode is a known value.
func (m DateMode) IsValid() bool {
	switch m {
	case DateModeFlexible, DateModeExact:
		return true
	default:
		return false
	}
}

// DateRange is one [start, end] window in upstream wire format.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange converts calendar dates to an upstream date range.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: start.UTC().Format(isoTimestampFormat),
		End:   end.UTC().Format(isoTimestampFormat),
	}
}

// PartitionDateRanges splits the requested date range into the windows sent
// upstream.
//
// Exact mode returns a single window covering the full range. Flexible mode
// walks forward from start in calendar-month steps, emitting one window per
// step with each window end capped at end; the final window always ends at
// end exactly. An empty flexible range (start == end) yields no windows.
//
// Returns ErrInvalidDateRange when start is after end.
func PartitionDateRanges(start, end time.Time, mode DateMode) ([]DateRange, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidDateRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	if mode == DateModeExact {
		return []DateRange{NewDateRange(start, end)}, nil
	}

	var ranges []DateRange
	current := start
	for current.Before(end) {
		next := addCalendarMonth(current)
		rangeEnd := next
		if rangeEnd.After(end) {
			rangeEnd = end
		}
		ranges = append(ranges, NewDateRange(current, rangeEnd))
		current = rangeEnd
	}
	return ranges, nil
}

// addCalendarMonth advances t by one calendar month, clamping the day to the
// last day of the target month (Jan 31 -> Feb 28, not Mar 3).
func addCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())

	if last := lastDayOfMonth(firstOfNext); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in t's month.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
