package model

import (
	"time"

	"github.com/google/uuid"
)

// CodeStatus enumerates company-code states.
type CodeStatus string

const (
	CodeStatusActive  CodeStatus = "active"
	CodeStatusUsed    CodeStatus = "used"
	CodeStatusExpired CodeStatus = "expired"
)

// Company holds a credit balance backing its access codes.
// Remaining credit is Credits - UsedCredits.
type Company struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	Credits      int       `json:"credits"`
	UsedCredits  int       `json:"usedCredits"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RemainingCredits returns the spendable credit balance.
func (c *Company) RemainingCredits() int {
	return c.Credits - c.UsedCredits
}

// CompanyCode is a single-use access code tied to a company.
type CompanyCode struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	CompanyID    uuid.UUID  `json:"companyId"`
	Status       CodeStatus `json:"status"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	UsedBy       *string    `json:"usedBy,omitempty"`
	UsedAt       *time.Time `json:"usedAt,omitempty"`
	FormationIDs []string   `json:"formationIds"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// VerifyCodeRequest is the payload for the code verification endpoint.
type VerifyCodeRequest struct {
	Code  string `json:"code" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// MarkCodeUsedRequest is the payload for redeeming a verified code.
type MarkCodeUsedRequest struct {
	CodeID       uuid.UUID `json:"codeId" binding:"required"`
	UserID       string    `json:"userId" binding:"required"`
	FormationIDs []string  `json:"formationIds"`
}

// CodeRecipient pairs a code with the email it should be sent to.
type CodeRecipient struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// SendCompanyCodesRequest is the payload for bulk code emailing.
type SendCompanyCodesRequest struct {
	CompanyID uuid.UUID       `json:"companyId" binding:"required"`
	Codes     []CodeRecipient `json:"codes" binding:"required,min=1,dive"`
}

// CodeSendResult is the per-recipient outcome of a bulk code send.
type CodeSendResult struct {
	Email     string `json:"email"`
	Sent      bool   `json:"sent"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CodeSendSummary aggregates a bulk code send.
type CodeSendSummary struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
