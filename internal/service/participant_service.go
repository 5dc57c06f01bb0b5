package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/repository"
)

// ParticipantService handles participant management.
type ParticipantService struct {
	participantRepo *repository.ParticipantRepository
	log             zerolog.Logger
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(participantRepo *repository.ParticipantRepository, log zerolog.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		log:             log.With().Str("component", "participant_service").Logger(),
	}
}

// List returns every participant.
func (s *ParticipantService) List(ctx context.Context) ([]model.Participant, error) {
	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []model.Participant{}
	}
	return participants, nil
}

// Upsert creates or edits one participant.
func (s *ParticipantService) Upsert(ctx context.Context, req model.UpsertParticipantRequest) (*model.Participant, error) {
	allowed := 1
	if req.AllowedAttempts != nil {
		allowed = *req.AllowedAttempts
	}
	p := &model.Participant{
		Email:           model.NormalizeEmail(req.Email),
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		Company:         strings.TrimSpace(req.Company),
		AllowedAttempts: allowed,
	}
	if err := s.participantRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("upsert participant: %w", err)
	}
	return p, nil
}

// AllowRetry grants one extra attempt and returns the new allowance.
func (s *ParticipantService) AllowRetry(ctx context.Context, email string) (int, error) {
	allowed, err := s.participantRepo.IncrementAllowedAttempts(ctx, model.NormalizeEmail(email))
	if err != nil {
		return 0, ErrParticipantNotFound
	}
	return allowed, nil
}

// ImportJSON bulk-loads participants from a JSON payload, per-item.
func (s *ParticipantService) ImportJSON(ctx context.Context, items []model.UpsertParticipantRequest) model.ImportReport {
	report := model.ImportReport{Errors: []string{}}
	for i, item := range items {
		if _, err := s.Upsert(ctx, item); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("participant %d (%s): %v", i+1, item.Email, err))
			continue
		}
		report.Success++
	}
	return report
}

// ImportXLSX bulk-loads participants from a spreadsheet. The first sheet
// must carry an `email` column; `name`, `phone`, `company` and
// `allowed_attempts` are optional. Rows fail independently.
func (s *ParticipantService) ImportXLSX(ctx context.Context, r io.Reader) (*model.ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.New("no data rows found")
	}

	header := map[string]int{}
	for i, h := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := header["email"]; !ok {
		return nil, errors.New("missing required column: email")
	}

	report := &model.ImportReport{Errors: []string{}}
	for i := 1; i < len(rows); i++ {
		rowNo := i + 1
		row := rows[i]

		get := func(key string) string {
			idx, ok := header[key]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		email := model.NormalizeEmail(get("email"))
		if email == "" {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: email is required", rowNo))
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: invalid email %q", rowNo, email))
			continue
		}

		allowed := 1
		if raw := get("allowed_attempts"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				report.Failed++
				report.Errors = append(report.Errors, fmt.Sprintf("row %d: invalid allowed_attempts %q", rowNo, raw))
				continue
			}
			allowed = n
		}

		p := &model.Participant{
			Email:           email,
			Name:            get("name"),
			Phone:           get("phone"),
			Company:         get("company"),
			AllowedAttempts: allowed,
		}
		if err := s.participantRepo.Upsert(ctx, p); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNo, err))
			continue
		}
		report.Success++
	}

	s.log.Info().
		Int("success", report.Success).
		Int("failed", report.Failed).
		Msg("Participant import finished")

	return report, nil
}

// ExportXLSX renders all participants as a spreadsheet.
func (s *ParticipantService) ExportXLSX(ctx context.Context) ([]byte, error) {
	participants, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"email", "name", "phone", "company", "allowed_attempts", "created_at"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, p := range participants {
		row := i + 2
		values := []any{
			p.Email,
			p.Name,
			p.Phone,
			p.Company,
			p.AllowedAttempts,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "F", 22)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
