package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer is one submitted (question, value) pair. Value mirrors whatever
// the client sent: an option index, a list of indices, a boolean-like
// token, or free text.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Value      interface{} `json:"answer"`
}

// Attempt represents one participant's pass through the quiz.
// The grading fields stay nil while the attempt is in progress; an
// attempt is completed iff CompletedAt is set.
type Attempt struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	AttemptNumber  int        `json:"attemptNumber"`
	StartedAt      time.Time  `json:"startedAt"`
	Answers        []Answer   `json:"answers"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Score          *int       `json:"score,omitempty"`
	Total          *int       `json:"total,omitempty"`
	Percentage     *int       `json:"percentage,omitempty"`
	Passed         *bool      `json:"passed,omitempty"`
	ElapsedSeconds *int       `json:"timeSpentSeconds,omitempty"`
}

// Completed reports whether the attempt reached its terminal state.
func (a *Attempt) Completed() bool {
	return a.CompletedAt != nil
}

// StartAttemptRequest is the payload for starting a new attempt.
type StartAttemptRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AutosaveRequest is the payload for the periodic answer snapshot.
type AutosaveRequest struct {
	AttemptID uuid.UUID `json:"attemptId" binding:"required"`
	Answers   []Answer  `json:"answers"`
}

// CompleteAttemptRequest is the payload for finishing an attempt, sent on
// explicit submission or when the client timer reaches zero.
type CompleteAttemptRequest struct {
	AttemptID uuid.UUID `json:"attemptId" binding:"required"`
	Answers   []Answer  `json:"answers"`
}

// CheckEmailRequest is the payload for the account lookup endpoint.
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckAttemptsRequest is the payload for listing a participant's attempts.
type CheckAttemptsRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendResultsEmailRequest is the payload for the result email endpoint.
type SendResultsEmailRequest struct {
	ParticipantEmail string  `json:"participantEmail" binding:"required,email"`
	Score            int     `json:"score" binding:"min=0"`
	Total            int     `json:"total" binding:"min=0"`
	Percentage       int     `json:"percentage" binding:"min=0,max=100"`
	Passed           bool    `json:"passed"`
	TimeSpentSeconds int     `json:"timeSpentSeconds" binding:"min=0"`
	CompletedAt      *string `json:"completedAt"`
}
