package service

import "testing"

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "AB12CD3", "AB12CD3"},
		{"lowercase", "ab12cd3", "AB12CD3"},
		{"dashes stripped", "AB1-2CD-3", "AB12CD3"},
		{"spaces stripped", " ab 12 cd 3 ", "AB12CD3"},
		{"mixed separators", "a_b.1-2/c d#3", "AB12CD3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCode(tt.in); got != tt.want {
				t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
