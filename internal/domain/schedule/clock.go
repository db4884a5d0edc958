package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// Accepts "9:00am", "5:00 PM" (case-insensitive, internal spaces
// stripped) and 24-hour "17:00".
var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})(am|pm)?$`)

// ParseClock converts a clock string to a minute-of-day offset.
// The 12-hour form requires a trailing am/pm marker and an hour in 1..12;
// the bare form is 24-hour with an hour in 0..23.
func ParseClock(text string) (int, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(text, " ", ""))
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty time string", ErrInvalidTimeFormat)
	}

	m := clockPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	switch m[3] {
	case "":
		if hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		hour %= 12
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
		}
		hour = hour%12 + 12
	}

	return hour*60 + minute, nil
}

// FormatMinutes renders a minute-of-day offset as the canonical 12-hour
// display string, no leading zero on the hour: 540 -> "9:00 AM",
// 900 -> "3:00 PM". Both parser forms normalize to this one output.
func FormatMinutes(minutes int) string {
	hour := minutes / 60
	minute := minutes % 60

	marker := "AM"
	if hour >= 12 {
		marker = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, marker)
}
