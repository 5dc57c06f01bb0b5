package quiz

import (
	"fmt"
	"time"
)

// DefaultDuration is the fixed attempt time limit unless configured otherwise.
const DefaultDuration = 1800 * time.Second

// Remaining returns the whole seconds left on an attempt, clamped at zero.
func Remaining(start time.Time, duration time.Duration, now time.Time) int {
	left := int(duration.Seconds()) - Elapsed(start, now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the attempt timer has reached zero.
func Expired(start time.Time, duration time.Duration, now time.Time) bool {
	return Remaining(start, duration, now) == 0
}

// Elapsed returns whole seconds between start and end, floored.
// Callers must not pass an end instant earlier than start.
func Elapsed(start, end time.Time) int {
	return int(end.Sub(start).Seconds())
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes widen past
// two digits when the value exceeds 99 minutes.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
