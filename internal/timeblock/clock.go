package timeblock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Clock errors.
var (
	ErrMalformedClock = errors.New("time must be in \"H:MM AM|PM\" format")
)

const (
	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440
	// LastValidEnd is the latest allowed end time, 11:55 PM in minutes.
	LastValidEnd = 1435
	// MinDuration is the smallest allowed timeblock length in minutes.
	MinDuration = 5
)

// ParseClock converts a 12-hour clock string ("H:MM AM|PM", optional leading
// zero on the hour) to minutes from midnight. "12:00 AM" is 0, "12:00 PM" is
// 720. Returns ErrMalformedClock on anything it cannot parse.
func ParseClock(s string) (int, error) {
	colon := strings.IndexByte(s, ':')
	space := strings.IndexByte(s, ' ')
	if colon < 1 || space != colon+3 || len(s) != space+3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}

	hour, err := strconv.Atoi(strings.TrimPrefix(s[:colon], "0"))
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}
	min, err := strconv.Atoi(s[colon+1 : colon+3])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}

	switch s[space+1:] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrMalformedClock, s)
	}

	return hour*60 + min, nil
}

// FormatClock converts minutes from midnight to a 12-hour clock string with
// no leading zero on the hour and a two-digit minute. The input is reduced
// modulo a 24-hour cycle, so negative and overflowing values wrap.
func FormatClock(mins int) string {
	mins = ((mins % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	hour := mins / 60
	min := mins % 60

	meridiem := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", hour, min, meridiem)
}

// MustParseClock is ParseClock for times already validated by the caller.
// It panics on malformed input and exists for internal arithmetic on times
// that entered the system through ParseClock.
func MustParseClock(s string) int {
	m, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return m
}

// AddMinutes returns the clock string delta minutes after (or before, when
// negative) t, wrapping within a 24-hour cycle. It does not enforce same-day
// bounds; callers that care about midnight must check before committing.
func AddMinutes(t string, delta int) string {
	return FormatClock(MustParseClock(t) + delta)
}

// MinuteDifference returns ParseClock(t2) - ParseClock(t1). Both times are
// assumed to belong to the same anchored day and to be supplied in intended
// chronological order; no 24-hour correction is applied when t2 < t1.
func MinuteDifference(t1, t2 string) int {
	return MustParseClock(t2) - MustParseClock(t1)
}

// MinuteOfHour returns the minute field of a clock string ("4:50 PM" -> 50).
func MinuteOfHour(t string) int {
	colon := strings.IndexByte(t, ':')
	m, _ := strconv.Atoi(t[colon+1 : colon+3])
	return m
}

// StartingHour zeroes the minute field, keeping AM/PM ("4:50 PM" -> "4:00 PM").
func StartingHour(t string) string {
	colon := strings.IndexByte(t, ':')
	return t[:colon] + ":00" + t[colon+3:]
}

// HourLabel returns the ruler label for a clock string ("4:50 PM" -> "4 PM").
func HourLabel(t string) string {
	colon := strings.IndexByte(t, ':')
	return t[:colon] + t[colon+3:]
}

// OverlapFraction computes the fraction of a timeblock lying in the hour
// after its starting hour. It is only defined for blocks shorter than 30
// minutes; for anything longer it returns nil (the ruler does not need it).
func OverlapFraction(start string, minutes int) *float64 {
	if minutes >= 30 {
		return nil
	}

	startMin := MinuteOfHour(start)
	v := 0.0
	if startMin > 60-minutes {
		v = 1 - float64(60-startMin)/float64(minutes)
	}
	return &v
}
