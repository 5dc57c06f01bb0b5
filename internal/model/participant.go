package model

import (
	"strings"
	"time"
)

// NormalizeEmail canonicalizes an email for use as a participant key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Participant is an email-identified person allowed to take the quiz.
// Email is normalized to lower-case and trimmed before any lookup or write.
type Participant struct {
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Company         string    `json:"company"`
	AllowedAttempts int       `json:"allowedAttempts"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertParticipantRequest is the payload for creating or editing a participant.
type UpsertParticipantRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Name            string `json:"name" binding:"omitempty,max=255"`
	Phone           string `json:"phone" binding:"omitempty,max=50"`
	Company         string `json:"company" binding:"omitempty,max=255"`
	AllowedAttempts *int   `json:"allowedAttempts" binding:"omitempty,min=1"`
}

// ImportParticipantsRequest is the payload for JSON bulk participant import.
type ImportParticipantsRequest struct {
	Participants []UpsertParticipantRequest `json:"participants" binding:"required,min=1,dive"`
}
