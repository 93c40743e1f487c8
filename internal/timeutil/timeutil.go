package timeutil

import "time"

// DateLayout defines the canonical date-key format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// kickoffLayouts are tried in order when parsing upstream timestamps. The feed
// mostly emits RFC3339, but some competition files carry zoneless values.
var kickoffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDateKey parses a YYYY-MM-DD date key.
func ParseDateKey(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// DateKey returns the calendar day a timestamp falls on in the given location.
// Grouping happens on the viewer's local day, not the UTC slice of the
// timestamp, so late-evening kickoffs land on the right day.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// RelativeDateKey returns the date key offsetDays away from now in the given
// location. Negative offsets reach into the past.
func RelativeDateKey(now time.Time, offsetDays int, loc *time.Location) string {
	return DateKey(now.AddDate(0, 0, offsetDays), loc)
}

// ParseKickoff parses an upstream kickoff timestamp, tolerating zoneless
// values (assumed UTC). Unparseable input yields the zero time.
func ParseKickoff(value string) time.Time {
	for _, layout := range kickoffLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatClockTime renders an HH:MM display time in the given location.
// The zero time renders as an empty string.
func FormatClockTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("15:04")
}

// ReadableDateLabel renders a long-form header label ("Monday, Jan 2") for a
// date key. Unparseable keys are echoed back unchanged.
func ReadableDateLabel(dateKey string) string {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return dateKey
	}
	return t.Format("Monday, Jan 2")
}
