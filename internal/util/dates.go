package util

import "time"

// dateLayouts are tried in order when parsing a free-form transaction date.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"2006-01-02T15:04:05Z07:00",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseDate parses a free-form date string against the accepted layouts.
// Returns false when the value is empty or matches none of them.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey returns the "YYYY-MM" bucket key for a date. Keys of this shape
// sort chronologically under plain string ordering.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
