package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/quizcert/quizcert-backend/internal/mailer"
	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/repository"
)

// CodeLength is the fixed length of a normalized company code.
const CodeLength = 7

// CodeService handles company-code verification, redemption, and delivery.
type CodeService struct {
	companyRepo *repository.CompanyRepository
	mailer      *mailer.Mailer
	log         zerolog.Logger
}

// NewCodeService creates a new CodeService.
func NewCodeService(companyRepo *repository.CompanyRepository, m *mailer.Mailer, log zerolog.Logger) *CodeService {
	return &CodeService{
		companyRepo: companyRepo,
		mailer:      m,
		log:         log.With().Str("component", "code_service").Logger(),
	}
}

// NormalizeCode upper-cases a raw code and strips every separator,
// yielding the fixed 7-character identifier used for lookup.
func NormalizeCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// VerifyResult is the outcome of a successful code verification.
type VerifyResult struct {
	Valid       bool   `json:"valid"`
	CompanyID   string `json:"companyId"`
	CodeID      string `json:"codeId"`
	CompanyName string `json:"companyName"`
}

// Verify checks that a code exists, is active and unexpired, and that its
// company still has spendable credits.
func (s *CodeService) Verify(ctx context.Context, rawCode string) (*VerifyResult, error) {
	code := NormalizeCode(rawCode)
	if len(code) != CodeLength {
		return nil, ErrCodeInvalid
	}

	cc, err := s.companyRepo.GetCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("get code: %w", err)
	}

	switch cc.Status {
	case model.CodeStatusUsed:
		return nil, ErrCodeUsed
	case model.CodeStatusExpired:
		return nil, ErrCodeExpired
	}
	if cc.ExpiresAt != nil && cc.ExpiresAt.Before(time.Now()) {
		return nil, ErrCodeExpired
	}

	company, err := s.companyRepo.GetCompany(ctx, cc.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if company.RemainingCredits() <= 0 {
		return nil, ErrCompanyNoCredits
	}

	return &VerifyResult{
		Valid:       true,
		CompanyID:   company.ID.String(),
		CodeID:      cc.ID.String(),
		CompanyName: company.Name,
	}, nil
}

// MarkUsed redeems a verified code for a user: the code flips to used and
// one company credit is spent, atomically.
func (s *CodeService) MarkUsed(ctx context.Context, codeID uuid.UUID, userID string, formationIDs []string) error {
	err := s.companyRepo.RedeemCode(ctx, codeID, userID, formationIDs)
	switch {
	case err == nil:
		s.log.Info().
			Str("code_id", codeID.String()).
			Str("user_id", userID).
			Msg("Code redeemed")
		return nil
	case errors.Is(err, repository.ErrCodeNotRedeemable):
		// Distinguish unknown from consumed for the error taxonomy.
		if _, getErr := s.companyRepo.GetCodeByID(ctx, codeID); getErr != nil {
			return ErrCodeNotFound
		}
		return ErrCodeUsed
	case errors.Is(err, repository.ErrNoCredits):
		return ErrCompanyNoCredits
	default:
		return fmt.Errorf("redeem code: %w", err)
	}
}

// SendCodes emails one access code per recipient. Items succeed or fail
// independently and the aggregate is returned alongside per-item results.
func (s *CodeService) SendCodes(ctx context.Context, companyID uuid.UUID, codes []model.CodeRecipient) (model.CodeSendSummary, []model.CodeSendResult, error) {
	company, err := s.companyRepo.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CodeSendSummary{}, nil, ErrCompanyNotFound
		}
		return model.CodeSendSummary{}, nil, fmt.Errorf("get company: %w", err)
	}

	summary := model.CodeSendSummary{Total: len(codes)}
	results := make([]model.CodeSendResult, 0, len(codes))

	for _, item := range codes {
		messageID, err := s.mailer.SendCompanyCode(ctx, item.Email, NormalizeCode(item.Code), company.Name)
		if err != nil {
			s.log.Error().Err(err).Str("email", item.Email).Msg("Code email failed")
			summary.Failed++
			results = append(results, model.CodeSendResult{Email: item.Email, Error: err.Error()})
			continue
		}
		summary.Sent++
		results = append(results, model.CodeSendResult{Email: item.Email, Sent: true, MessageID: messageID})
	}

	return summary, results, nil
}
