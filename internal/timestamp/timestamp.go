package timestamp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNegativeDuration reports arithmetic or construction that would produce a
// negative instant.
var ErrNegativeDuration = errors.New("negative duration")

// Timestamp is a single instant, counted in whole milliseconds from zero.
// The zero value is the zero instant.
type Timestamp struct {
	ms int64
}

// New constructs a Timestamp from a millisecond count.
func New(milliseconds int64) (Timestamp, error) {
	if milliseconds < 0 {
		return Timestamp{}, fmt.Errorf("%w: %dms", ErrNegativeDuration, milliseconds)
	}
	return Timestamp{ms: milliseconds}, nil
}

// FromMillis constructs a Timestamp, clamping negative input to zero.
func FromMillis(milliseconds int64) Timestamp {
	if milliseconds < 0 {
		milliseconds = 0
	}
	return Timestamp{ms: milliseconds}
}

// FromSeconds converts a floating-point second count, rounding half up to the
// nearest millisecond. Negative input clamps to zero.
func FromSeconds(seconds float64) Timestamp {
	return FromMillis(int64(math.Floor(seconds*1000 + 0.5)))
}

// Millis returns the instant as a millisecond count.
func (t Timestamp) Millis() int64 { return t.ms }

// Seconds returns the instant in seconds.
func (t Timestamp) Seconds() float64 { return float64(t.ms) / 1000 }

// Minutes returns the instant in minutes.
func (t Timestamp) Minutes() float64 { return t.Seconds() / 60 }

// Hours returns the instant in hours.
func (t Timestamp) Hours() float64 { return t.Minutes() / 60 }

// Add returns the instant shifted forward by the given milliseconds.
// A negative shift clamps at zero.
func (t Timestamp) Add(milliseconds int64) Timestamp {
	return FromMillis(t.ms + milliseconds)
}

// Sub returns the instant shifted backward by the given milliseconds,
// clamping at zero.
func (t Timestamp) Sub(milliseconds int64) Timestamp {
	return FromMillis(t.ms - milliseconds)
}

// Before reports whether t precedes other.
func (t Timestamp) Before(other Timestamp) bool { return t.ms < other.ms }

// After reports whether t follows other.
func (t Timestamp) After(other Timestamp) bool { return t.ms > other.ms }

// Equal reports whether the two instants coincide.
func (t Timestamp) Equal(other Timestamp) bool { return t.ms == other.ms }

// Magnitude returns the absolute difference between two instants in
// milliseconds.
func (t Timestamp) Magnitude(other Timestamp) int64 {
	if other.ms > t.ms {
		return other.ms - t.ms
	}
	return t.ms - other.ms
}

// String formats the instant as HH:MM:SS.mmm.
func (t Timestamp) String() string {
	total := t.ms
	hours := total / 3600000
	minutes := (total % 3600000) / 60000
	seconds := (total % 60000) / 1000
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// Parse reads an HH:MM:SS.mmm string produced by String.
func Parse(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Timestamp{}, fmt.Errorf("parse timestamp: empty value")
	}
	hmsPart, msPart, ok := strings.Cut(value, ".")
	if !ok {
		return Timestamp{}, fmt.Errorf("parse timestamp: invalid value %q", value)
	}
	hms := strings.Split(hmsPart, ":")
	if len(hms) != 3 {
		return Timestamp{}, fmt.Errorf("parse timestamp: invalid value %q", value)
	}
	hours, errH := strconv.ParseInt(hms[0], 10, 64)
	minutes, errM := strconv.ParseInt(hms[1], 10, 64)
	seconds, errS := strconv.ParseInt(hms[2], 10, 64)
	millis, errMS := strconv.ParseInt(msPart, 10, 64)
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp: invalid value %q", value)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return Timestamp{}, fmt.Errorf("parse timestamp: invalid value %q", value)
	}
	return Timestamp{ms: hours*3600000 + minutes*60000 + seconds*1000 + millis}, nil
}
