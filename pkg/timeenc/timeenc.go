package timeenc

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 1440

// MidnightStopIndex is the punch index the clock sends for a stop exactly at
// midnight. The regular formula would yield 1 (same as a 00:00 start), so the
// protocol uses 1440/5+1 instead. Fixed wire constant, do not derive.
const MidnightStopIndex = 289

// ToMinutes parses "HH:MM" (00-23 hours, 00-59 minutes) into minute-of-day.
// Returns false for empty or malformed input; it never panics.
func ToMinutes(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ToText formats minute-of-day as "HH:MM". Zero is the shared sentinel for
// "not set", so it renders as the empty string; use Format when a genuine
// midnight must be shown.
func ToText(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return Format(minutes)
}

// Format always renders minute-of-day as "HH:MM", including "00:00" for zero
// and "24:00" for a next-day midnight stop.
func Format(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// PunchIndex encodes minute-of-day as the clock's 5-minute index,
// minutes/5 + 1. Zero (unset) stays zero.
func PunchIndex(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes/5 + 1
}

// StopIndex encodes a stop time. A stop at next-day midnight (stored
// internally as 1440) maps to the 289 sentinel rather than to index 1.
func StopIndex(minutes int) int {
	if minutes == MinutesPerDay {
		return MidnightStopIndex
	}
	return PunchIndex(minutes)
}

// PauseIndex encodes break minutes as a pause index. Zero break means no
// pause registration at all.
func PauseIndex(breakMinutes int) int {
	if breakMinutes <= 0 {
		return 0
	}
	return breakMinutes/5 + 1
}

// PauseMinutes decodes a pause index back to break minutes. Pauses carry a
// -1 offset that starts and stops do not; the asymmetry is part of the wire
// protocol and is preserved as-is.
func PauseMinutes(pauseID int) int {
	if pauseID > 0 {
		return (pauseID - 1) * 5
	}
	return 0
}

// PauseTicks returns the pause correction in 5-minute ticks, as used when
// summing punch registrations: pauseId > 0 ? pauseId-1 : 0.
func PauseTicks(pauseID int) int {
	if pauseID > 0 {
		return pauseID - 1
	}
	return 0
}

// IndexMinutes decodes a start/stop punch index to minute-of-day. The
// midnight sentinel decodes to 1440 so that durations wrap correctly.
func IndexMinutes(id int) int {
	if id <= 0 {
		return 0
	}
	if id == MidnightStopIndex {
		return MinutesPerDay
	}
	return (id - 1) * 5
}
