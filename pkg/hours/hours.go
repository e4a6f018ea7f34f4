package hours

import (
	"math"
	"strconv"
	"strings"
)

// Round2 rounds decimal hours to two places.
// Example: Round2(8.8333) returns 8.83
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Canonical coerces a value that rounds to -0.00 back to plain 0.00, so a
// balance never renders as "-0:00".
func Canonical(value float64) float64 {
	if Round2(value) == 0 {
		return 0
	}
	return value
}

// Parse reads a decimal-hours field, accepting either "." or "," as the
// decimal separator. Empty input parses as zero.
func Parse(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}

	normalized := strings.ReplaceAll(text, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// FromMinutes converts whole minutes to decimal hours, rounded to two places.
func FromMinutes(minutes int) float64 {
	return Round2(float64(minutes) / 60.0)
}

// Format renders decimal hours with two places, after canonical-zero
// coercion. Example: Format(-0.0001) returns "0.00".
func Format(value float64) string {
	return strconv.FormatFloat(Round2(Canonical(value)), 'f', 2, 64)
}
