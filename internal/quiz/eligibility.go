package quiz

// CanStart decides whether a participant may begin a new attempt given
// their allowance and the count of prior *completed* attempts. The first
// attempt is always allowed; after that the allowance must exceed the
// completed count. In-progress attempts never count against the limit.
func CanStart(allowedAttempts, completedAttempts int) bool {
	if completedAttempts == 0 {
		return true
	}
	return allowedAttempts > completedAttempts
}

// NextAttemptNumber returns the 1-based number for the next attempt.
func NextAttemptNumber(completedAttempts int) int {
	return completedAttempts + 1
}
