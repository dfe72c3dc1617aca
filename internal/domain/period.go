package domain

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDateRange accepts RFC3339 timestamps or plain dates. A plain end date
// covers the whole day so that the range stays inclusive.
func ParseDateRange(start, end string) (DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, ErrInvalidRange
	}
	from, _, err := parseBound(start)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	to, dateOnly, err := parseBound(end)
	if err != nil {
		return DateRange{}, ErrInvalidRange
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: from, End: to}, nil
}

func parseBound(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
