package listings

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default window assumed when an hours string cannot be parsed: open
// 08:00, close 22:00 local.
const (
	defaultOpeningHour = 8
	defaultClosingHour = 22
)

// closingPattern extracts a closing time like "Closes 8 PM" or
// "Closes 11:30 PM" from a free-text hours string. Minutes only satisfy
// the pattern; the open/closed comparison uses whole hours.
var closingPattern = regexp.MustCompile(`(?i)Closes (\d{1,2}(?::\d{2})?\s*(?:AM|PM))`)

var closingHourPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::\d{2})?\s*(AM|PM)`)

// IsOpenNow reports whether a business should be considered open at the
// caller's local clock, given its free-text hours string and 24-hour
// flag. Best-effort display logic: parse failures fall back to the
// default window and never error.
func IsOpenNow(hours string, isOpen24Hours bool, now func() time.Time) bool {
	if isOpen24Hours {
		return true
	}
	if now == nil {
		now = time.Now
	}
	currentHour := now().Hour()

	m := closingPattern.FindStringSubmatch(hours)
	if m == nil {
		return currentHour >= defaultOpeningHour && currentHour < defaultClosingHour
	}

	closingHour := parseClosingHour(m[1])

	// Non-24h businesses are assumed to open at 8 AM.
	return currentHour >= defaultOpeningHour && currentHour < closingHour
}

// parseClosingHour converts a matched 12-hour closing time to a 24-hour
// hour value. "12 PM" is noon (12), "12 AM" is midnight (0).
func parseClosingHour(s string) int {
	m := closingHourPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hour, _ := strconv.Atoi(m[1])
	switch strings.ToUpper(m[2]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}
