package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizcert/quizcert-backend/internal/model"
)

// ErrNoCredits is returned when a redemption would overdraw the company.
var ErrNoCredits = errors.New("company has no remaining credits")

// ErrCodeNotRedeemable is returned when the code is not active anymore.
var ErrCodeNotRedeemable = errors.New("code is not redeemable")

// CompanyRepository handles company and company-code data access.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// GetCompany retrieves a company by ID.
func (r *CompanyRepository) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, contact_email, credits, used_credits, created_at
		 FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ContactEmail, &c.Credits, &c.UsedCredits, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const codeColumns = `id, code, company_id, status, expires_at, used_by, used_at, formation_ids, created_at`

// GetCodeByCode retrieves a company code by its normalized code string.
func (r *CompanyRepository) GetCodeByCode(ctx context.Context, code string) (*model.CompanyCode, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM company_codes WHERE code = $1`, code,
	)
	return scanCode(row)
}

// GetCodeByID retrieves a company code by ID.
func (r *CompanyRepository) GetCodeByID(ctx context.Context, id uuid.UUID) (*model.CompanyCode, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+codeColumns+` FROM company_codes WHERE id = $1`, id,
	)
	return scanCode(row)
}

// RedeemCode marks a code used and spends one company credit in a single
// transaction, so a failure can never leave the two records inconsistent.
func (r *CompanyRepository) RedeemCode(ctx context.Context, codeID uuid.UUID, userID string, formationIDs []string) error {
	if formationIDs == nil {
		formationIDs = []string{}
	}
	formations, err := json.Marshal(formationIDs)
	if err != nil {
		return fmt.Errorf("marshal formation ids: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var companyID uuid.UUID
	err = tx.QueryRow(ctx,
		`UPDATE company_codes
		 SET status = 'used', used_by = $2, used_at = NOW(), formation_ids = $3
		 WHERE id = $1 AND status = 'active'
		 RETURNING company_id`,
		codeID, userID, formations,
	).Scan(&companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCodeNotRedeemable
		}
		return fmt.Errorf("mark code used: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE companies
		 SET used_credits = used_credits + 1
		 WHERE id = $1 AND credits - used_credits > 0`,
		companyID,
	)
	if err != nil {
		return fmt.Errorf("spend credit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoCredits
	}

	return tx.Commit(ctx)
}

func scanCode(row rowScanner) (*model.CompanyCode, error) {
	var (
		c   model.CompanyCode
		raw []byte
	)
	err := row.Scan(&c.ID, &c.Code, &c.CompanyID, &c.Status, &c.ExpiresAt, &c.UsedBy, &c.UsedAt, &raw, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.FormationIDs); err != nil {
			return nil, fmt.Errorf("unmarshal formation ids: %w", err)
		}
	}
	return &c, nil
}
