package quiz

import "testing"

func TestCanStart(t *testing.T) {
	tests := []struct {
		name      string
		allowed   int
		completed int
		want      bool
	}{
		{"first attempt always allowed", 1, 0, true},
		{"allowance exhausted", 1, 1, false},
		{"retry granted", 2, 1, true},
		{"second retry denied", 2, 2, false},
		{"zero allowance still grants first attempt", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanStart(tt.allowed, tt.completed); got != tt.want {
				t.Errorf("CanStart(%d, %d) = %v, want %v", tt.allowed, tt.completed, got, tt.want)
			}
		})
	}
}

func TestNextAttemptNumber(t *testing.T) {
	if got := NextAttemptNumber(0); got != 1 {
		t.Errorf("NextAttemptNumber(0) = %d, want 1", got)
	}
	if got := NextAttemptNumber(2); got != 3 {
		t.Errorf("NextAttemptNumber(2) = %d, want 3", got)
	}
}
