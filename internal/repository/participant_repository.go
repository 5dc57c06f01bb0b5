package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizcert/quizcert-backend/internal/model"
)

// ParticipantRepository handles participant data access.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

const participantColumns = `email, name, phone, company, allowed_attempts, created_at, updated_at`

// GetByEmail retrieves a participant by normalized email.
func (r *ParticipantRepository) GetByEmail(ctx context.Context, email string) (*model.Participant, error) {
	var p model.Participant
	err := r.pool.QueryRow(ctx,
		`SELECT `+participantColumns+` FROM quiz_participants WHERE email = $1`, email,
	).Scan(&p.Email, &p.Name, &p.Phone, &p.Company, &p.AllowedAttempts, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves all participants ordered by email.
func (r *ParticipantRepository) List(ctx context.Context) ([]model.Participant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+participantColumns+` FROM quiz_participants ORDER BY email`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []model.Participant
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.Email, &p.Name, &p.Phone, &p.Company, &p.AllowedAttempts, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// Upsert creates or updates a participant keyed by email.
func (r *ParticipantRepository) Upsert(ctx context.Context, p *model.Participant) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_participants (email, name, phone, company, allowed_attempts)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET name = EXCLUDED.name,
		     phone = EXCLUDED.phone,
		     company = EXCLUDED.company,
		     allowed_attempts = EXCLUDED.allowed_attempts,
		     updated_at = NOW()
		 RETURNING created_at, updated_at`,
		p.Email, p.Name, p.Phone, p.Company, p.AllowedAttempts,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// IncrementAllowedAttempts grants one more attempt ("allow retry") and
// returns the new allowance. The count is never auto-decremented.
func (r *ParticipantRepository) IncrementAllowedAttempts(ctx context.Context, email string) (int, error) {
	var allowed int
	err := r.pool.QueryRow(ctx,
		`UPDATE quiz_participants
		 SET allowed_attempts = allowed_attempts + 1, updated_at = NOW()
		 WHERE email = $1
		 RETURNING allowed_attempts`, email,
	).Scan(&allowed)
	return allowed, err
}
