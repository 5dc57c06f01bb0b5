package service

import (
	"errors"
	"strings"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptLimitReached = errors.New("no attempts remaining for this participant")
	ErrAttemptCompleted    = errors.New("attempt is already completed")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotAdmin            = errors.New("account is not an administrator")
	ErrCodeNotFound        = errors.New("company code not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCodeInvalid         = errors.New("company code format is invalid")
	ErrCodeUsed            = errors.New("company code has already been used")
	ErrCodeExpired         = errors.New("company code has expired")
	ErrCompanyNoCredits    = errors.New("company has no remaining credits")
)

// ValidationError carries every structural rule a question violated.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
