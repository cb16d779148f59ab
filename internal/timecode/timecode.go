package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat marks time expressions that match none of the recognized shapes.
var ErrInvalidFormat = errors.New("invalid time format")

// Parse converts a time expression into seconds.
//
// Recognized shapes, checked in order: a "ms" suffix (milliseconds), an "s"
// suffix (stripped, remainder re-examined), colon clock notation, and a bare
// floating-point number of seconds. Input is trimmed and lowercased first.
func Parse(text string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrInvalidFormat)
	}
	if trimmed, ok := strings.CutSuffix(s, "ms"); ok {
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
		}
		return value / 1000.0, nil
	}
	if trimmed, ok := strings.CutSuffix(s, "s"); ok {
		s = trimmed
	}
	if strings.Contains(s, ":") {
		return parseClock(s, text)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return value, nil
}

// parseClock handles H:MM:SS style expressions. Missing leading fields
// default to zero, so "02:03" means two minutes three seconds.
func parseClock(s, original string) (float64, error) {
	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q has more than three clock fields", ErrInvalidFormat, original)
	}
	for len(fields) < 3 {
		fields = append([]string{"0"}, fields...)
	}
	values := make([]float64, 3)
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, original)
		}
		values[i] = value
	}
	return values[0]*3600.0 + values[1]*60.0 + values[2], nil
}

// Compose builds seconds from separate hour, minute, and second components.
// The duration prober uses it after matching the clock fields individually.
func Compose(hours, minutes int, seconds float64) float64 {
	return float64(hours)*3600.0 + float64(minutes)*60.0 + seconds
}

// Format renders seconds as HH:MM:SS.mmm. Negative input clamps to zero and
// the fractional remainder rounds to the nearest millisecond, carrying into
// the seconds column when rounding reaches a full second.
func Format(t float64) string {
	if t < 0 {
		t = 0
	}
	ms := int(math.Round((t - math.Floor(t)) * 1000.0))
	total := int(t)
	if ms == 1000 {
		ms = 0
		total++
	}
	hh := total / 3600
	mm := (total % 3600) / 60
	ss := total % 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hh, mm, ss, ms)
}
