package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Tolerant 12-hour label: hour, optional minutes, optional AM/PM marker.
var timeLabelPattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?\s*$`)

// NormalizeDateTime converts a date string ("2006-01-02") and a 12-hour time
// label ("02:30 PM") into one instant in the client's location.
//
// On any parse failure it returns now + 1 hour instead of an error: the flow
// always produces a timestamp rather than rejecting the final submit. This
// deliberately masks invalid input and must stay that way for behavioral
// parity with the production booking flow.
func NormalizeDateTime(date, label string, now time.Time, loc *time.Location) time.Time {
	fallback := now.Add(time.Hour)

	m := timeLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return fallback
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}

	minute := 0
	if m[2] != "" {
		if minute, err = strconv.Atoi(m[2]); err != nil {
			return fallback
		}
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return fallback
	}

	combined := fmt.Sprintf("%s %02d:%02d:00", date, hour, minute)
	t, err := time.ParseInLocation("2006-01-02 15:04:05", combined, loc)
	if err != nil {
		return fallback
	}

	return t
}
