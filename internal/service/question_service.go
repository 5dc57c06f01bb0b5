package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
	"github.com/quizcert/quizcert-backend/internal/repository"
)

// QuestionService handles question management.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// List returns the full question set, correct answers included.
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questionRepo.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}

// ListForTaking returns the question set without grading fields.
func (s *QuestionService) ListForTaking(ctx context.Context) ([]model.QuestionForTaking, error) {
	questions, err := s.questionRepo.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	paper := make([]model.QuestionForTaking, len(questions))
	for i := range questions {
		paper[i] = questions[i].ForTaking()
	}
	return paper, nil
}

// Create normalizes, validates, and stores a single question.
func (s *QuestionService) Create(ctx context.Context, raw model.RawQuestion) (*model.Question, error) {
	q := quiz.Normalize(raw)
	if ok, msgs := quiz.Validate(q); !ok {
		return nil, &ValidationError{Messages: msgs}
	}
	if err := s.questionRepo.Upsert(ctx, &q); err != nil {
		return nil, fmt.Errorf("upsert question: %w", err)
	}
	return &q, nil
}

// Update applies a partial edit to an existing question. The result must
// still validate.
func (s *QuestionService) Update(ctx context.Context, id string, req model.UpdateQuestionRequest) (*model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	if req.Question != "" {
		q.Question = req.Question
	}
	if req.Type != "" {
		q.Type = model.QuestionType(req.Type)
	}
	if req.Options != nil {
		q.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		q.CorrectAnswer = req.CorrectAnswer
	}
	if req.Order != nil {
		q.Order = *req.Order
	}
	if req.Explanation != nil {
		q.Explanation = *req.Explanation
	}

	if ok, msgs := quiz.Validate(*q); !ok {
		return nil, &ValidationError{Messages: msgs}
	}
	if err := s.questionRepo.Upsert(ctx, q); err != nil {
		return nil, fmt.Errorf("upsert question: %w", err)
	}
	return q, nil
}

// Import bulk-loads raw question records. Each item succeeds or fails
// independently; one bad record never aborts the batch.
func (s *QuestionService) Import(ctx context.Context, raws []model.RawQuestion) model.ImportReport {
	report := model.ImportReport{Errors: []string{}}

	for i, raw := range raws {
		q := quiz.Normalize(raw)
		if ok, msgs := quiz.Validate(q); !ok {
			report.Failed++
			report.Errors = append(report.Errors,
				fmt.Sprintf("question %d: %s", i+1, (&ValidationError{Messages: msgs}).Error()))
			continue
		}
		if err := s.questionRepo.Upsert(ctx, &q); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("question %d: %v", i+1, err))
			s.log.Error().Err(err).Int("index", i).Msg("Question import write failed")
			continue
		}
		report.Success++
	}

	s.log.Info().
		Int("success", report.Success).
		Int("failed", report.Failed).
		Msg("Question import finished")

	return report
}
