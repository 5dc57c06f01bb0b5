package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizcert/quizcert-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListOrdered retrieves every question ordered by display order.
func (r *QuestionRepository) ListOrdered(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, type, options, correct_answer, order_num, explanation, created_at, updated_at
		 FROM quiz_questions
		 ORDER BY order_num, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a single question.
func (r *QuestionRepository) GetByID(ctx context.Context, id string) (*model.Question, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, question, type, options, correct_answer, order_num, explanation, created_at, updated_at
		 FROM quiz_questions WHERE id = $1`, id,
	)
	return scanQuestion(row)
}

// Upsert writes a question by ID, set-style: a second write to the same
// ID replaces the record. Questions are never deleted.
func (r *QuestionRepository) Upsert(ctx context.Context, q *model.Question) error {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	correct, err := marshalNullable(q.CorrectAnswer)
	if err != nil {
		return fmt.Errorf("marshal correct answer: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO quiz_questions (id, question, type, options, correct_answer, order_num, explanation)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE
		 SET question = EXCLUDED.question,
		     type = EXCLUDED.type,
		     options = EXCLUDED.options,
		     correct_answer = EXCLUDED.correct_answer,
		     order_num = EXCLUDED.order_num,
		     explanation = EXCLUDED.explanation,
		     updated_at = NOW()`,
		q.ID, q.Question, q.Type, options, correct, q.Order, q.Explanation,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*model.Question, error) {
	var (
		q       model.Question
		options []byte
		correct []byte
	)
	if err := row.Scan(&q.ID, &q.Question, &q.Type, &options, &correct, &q.Order, &q.Explanation, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(options, &q.Options); err != nil {
		return nil, fmt.Errorf("unmarshal options: %w", err)
	}
	if len(correct) > 0 {
		if err := json.Unmarshal(correct, &q.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("unmarshal correct answer: %w", err)
		}
	}
	return &q, nil
}

// marshalNullable keeps SQL NULL for absent values instead of JSON null.
func marshalNullable(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
