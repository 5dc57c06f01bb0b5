package quiz

import (
	"testing"
	"time"
)

func TestRemaining(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		start    time.Time
		duration time.Duration
		want     int
	}{
		{"just started", now, DefaultDuration, 1800},
		{"halfway", now.Add(-900 * time.Second), DefaultDuration, 900},
		{"exactly expired", now.Add(-1800 * time.Second), DefaultDuration, 0},
		{"past expiry clamps to zero", now.Add(-2 * time.Hour), DefaultDuration, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.start, tt.duration, now); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	if Expired(now, DefaultDuration, now) {
		t.Error("fresh attempt should not be expired")
	}
	if !Expired(now.Add(-1800*time.Second), DefaultDuration, now) {
		t.Error("attempt at exactly the limit should be expired")
	}
}

func TestElapsedFloorsToWholeSeconds(t *testing.T) {
	start := time.Now()
	end := start.Add(90*time.Second + 800*time.Millisecond)

	if got := Elapsed(start, end); got != 90 {
		t.Errorf("Elapsed() = %d, want 90 (floored)", got)
	}
	if got := Elapsed(start, start); got != 0 {
		t.Errorf("Elapsed() = %d, want 0", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{75, "01:15"},
		{1800, "30:00"},
		{6000, "100:00"}, // minutes widen past two digits
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
