package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout   = "03:04 PM"
	minutesPerDay = 24 * 60
)

// ParseClock converts "hh:mm AM/PM" into minutes after midnight.
func ParseClock(value string) (int, bool) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(value)))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	hour := minutes / 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour12, minutes%60, suffix)
}

// ShiftClock moves a clock value forward by hours on a 24-hour dial. An
// unparsable value is returned unchanged.
func ShiftClock(value string, hours int) string {
	minutes, ok := ParseClock(value)
	if !ok {
		return value
	}
	return FormatClock(minutes + hours*60)
}
