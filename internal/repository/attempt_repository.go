package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
)

// AttemptRepository handles attempt data access.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

const attemptColumns = `id, email, attempt_number, started_at, answers,
	completed_at, score, total, percentage, passed, elapsed_seconds`

// Create inserts a new in-progress attempt with empty answers. The start
// instant is server-assigned.
func (r *AttemptRepository) Create(ctx context.Context, a *model.Attempt) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quiz_attempts (email, attempt_number)
		 VALUES ($1, $2)
		 RETURNING id, started_at`,
		a.Email, a.AttemptNumber,
	).Scan(&a.ID, &a.StartedAt)
}

// GetByID retrieves a single attempt.
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = $1`, id,
	)
	return scanAttempt(row)
}

// ListByEmail retrieves all attempts for an email, oldest first.
func (r *AttemptRepository) ListByEmail(ctx context.Context, email string) ([]model.Attempt, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attemptColumns+` FROM quiz_attempts
		 WHERE email = $1
		 ORDER BY attempt_number`, email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []model.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

// CountCompleted counts an email's completed attempts. In-progress
// attempts are excluded; only these count toward the eligibility gate.
func (r *AttemptRepository) CountCompleted(ctx context.Context, email string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_attempts
		 WHERE email = $1 AND completed_at IS NOT NULL`, email,
	).Scan(&n)
	return n, err
}

// Complete finalizes an attempt exactly once: answers, grading fields,
// elapsed time, and a server-assigned completion instant.
func (r *AttemptRepository) Complete(ctx context.Context, a *model.Attempt, res quiz.Result, elapsedSeconds int) error {
	raw, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	var completedAt time.Time
	err = r.pool.QueryRow(ctx,
		`UPDATE quiz_attempts
		 SET answers = $2,
		     score = $3,
		     total = $4,
		     percentage = $5,
		     passed = $6,
		     elapsed_seconds = $7,
		     completed_at = NOW()
		 WHERE id = $1 AND completed_at IS NULL
		 RETURNING completed_at`,
		a.ID, raw, res.Score, res.Total, res.Percentage, res.Passed, elapsedSeconds,
	).Scan(&completedAt)
	if err != nil {
		return err
	}

	a.CompletedAt = &completedAt
	a.Score = &res.Score
	a.Total = &res.Total
	a.Percentage = &res.Percentage
	a.Passed = &res.Passed
	a.ElapsedSeconds = &elapsedSeconds
	return nil
}

// ListCompleted retrieves completed attempts, newest first, with optional
// email filtering and pagination.
func (r *AttemptRepository) ListCompleted(ctx context.Context, email string, page, perPage int) ([]model.Attempt, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}
	offset := (page - 1) * perPage

	// Exact-match filter: emails routinely contain `_`, which is a
	// wildcard under LIKE and would leak other participants' results.
	where := `completed_at IS NOT NULL`
	args := []any{}
	if email != "" {
		where += ` AND email = $1`
		args = append(args, email)
	}

	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_attempts WHERE `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(
		`SELECT `+attemptColumns+` FROM quiz_attempts
		 WHERE `+where+`
		 ORDER BY completed_at DESC
		 LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2,
	)
	rows, err := r.pool.Query(ctx, listQuery, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attempts []model.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, 0, err
		}
		attempts = append(attempts, *a)
	}
	return attempts, total, rows.Err()
}

func scanAttempt(row rowScanner) (*model.Attempt, error) {
	var (
		a   model.Attempt
		raw []byte
	)
	err := row.Scan(&a.ID, &a.Email, &a.AttemptNumber, &a.StartedAt, &raw,
		&a.CompletedAt, &a.Score, &a.Total, &a.Percentage, &a.Passed, &a.ElapsedSeconds)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &a.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
	}
	if a.Answers == nil {
		a.Answers = []model.Answer{}
	}
	return &a, nil
}
