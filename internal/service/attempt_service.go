package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
	"github.com/quizcert/quizcert-backend/internal/repository"
)

// AttemptService orchestrates the attempt lifecycle:
// gate check → creation → autosave → completion → notification.
type AttemptService struct {
	attemptRepo     *repository.AttemptRepository
	participantRepo *repository.ParticipantRepository
	questionRepo    *repository.QuestionRepository
	userRepo        *repository.UserRepository
	rdb             *redis.Client
	cfg             *config.Config
	log             zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	participantRepo *repository.ParticipantRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *AttemptService {
	return &AttemptService{
		attemptRepo:     attemptRepo,
		participantRepo: participantRepo,
		questionRepo:    questionRepo,
		userRepo:        userRepo,
		rdb:             rdb,
		cfg:             cfg,
		log:             log.With().Str("component", "attempt_service").Logger(),
	}
}

// CheckEmail reports whether a user account exists for an email.
func (s *AttemptService) CheckEmail(ctx context.Context, email string) (bool, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("get user: %w", err)
	}
	return true, user.ID.String(), nil
}

// ListAttempts returns every attempt recorded for an email.
func (s *AttemptService) ListAttempts(ctx context.Context, email string) ([]model.Attempt, error) {
	attempts, err := s.attemptRepo.ListByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}
	return attempts, nil
}

// Start runs the eligibility gate and creates a new in-progress attempt.
// Returns the attempt, the sanitized question set, and the quiz duration.
func (s *AttemptService) Start(ctx context.Context, email string) (*model.Attempt, []model.QuestionForTaking, int, error) {
	email = model.NormalizeEmail(email)

	participant, err := s.participantRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, 0, ErrParticipantNotFound
		}
		return nil, nil, 0, fmt.Errorf("get participant: %w", err)
	}

	completed, err := s.attemptRepo.CountCompleted(ctx, email)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("count completed attempts: %w", err)
	}

	if !quiz.CanStart(participant.AllowedAttempts, completed) {
		return nil, nil, 0, ErrAttemptLimitReached
	}

	attempt := &model.Attempt{
		Email:         email,
		AttemptNumber: quiz.NextAttemptNumber(completed),
		Answers:       []model.Answer{},
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, nil, 0, fmt.Errorf("create attempt: %w", err)
	}

	// Cache the start instant so recovery flows avoid a DB round trip.
	// Best effort; the row keeps the source of truth.
	startKey := config.CacheKey.AttemptStartKey(attempt.ID.String())
	if err := s.rdb.Set(ctx, startKey, attempt.StartedAt.Unix(), s.cfg.QuizDuration*2).Err(); err != nil {
		s.log.Warn().Err(err).Str("attempt_id", attempt.ID.String()).Msg("Failed to cache start time")
	}

	questions, err := s.questionRepo.ListOrdered(ctx)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("list questions: %w", err)
	}
	paper := make([]model.QuestionForTaking, len(questions))
	for i := range questions {
		paper[i] = questions[i].ForTaking()
	}

	s.log.Info().
		Str("email", email).
		Int("attempt_number", attempt.AttemptNumber).
		Msg("Attempt started")

	return attempt, paper, int(s.cfg.QuizDuration.Seconds()), nil
}

// autosavePayload is the queue item consumed by the autosave worker.
type autosavePayload struct {
	AttemptID string         `json:"attempt_id"`
	Answers   []model.Answer `json:"answers"`
}

// Autosave queues the current answer snapshot for persistence. The write
// itself is fire-and-forget on the worker side; a queue failure is the
// only error surfaced here.
func (s *AttemptService) Autosave(ctx context.Context, attemptID uuid.UUID, answers []model.Answer) error {
	attempt, err := s.attemptRepo.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAttemptNotFound
		}
		return fmt.Errorf("get attempt: %w", err)
	}
	if attempt.Completed() {
		return ErrAttemptCompleted
	}
	if answers == nil {
		answers = []model.Answer{}
	}

	payload, err := json.Marshal(autosavePayload{
		AttemptID: attemptID.String(),
		Answers:   answers,
	})
	if err != nil {
		return fmt.Errorf("marshal autosave payload: %w", err)
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.PersistAnswersQueue, payload).Err(); err != nil {
		return fmt.Errorf("queue autosave: %w", err)
	}

	// Keep the freshest snapshot in cache for crash recovery.
	snapshotKey := config.CacheKey.AttemptAnswersKey(attemptID.String())
	raw, _ := json.Marshal(answers)
	if err := s.rdb.Set(ctx, snapshotKey, raw, s.cfg.QuizDuration*2).Err(); err != nil {
		s.log.Warn().Err(err).Str("attempt_id", attemptID.String()).Msg("Failed to cache answer snapshot")
	}

	return nil
}

// ResultEvent is published on the result channel when an attempt completes.
type ResultEvent struct {
	AttemptID     string    `json:"attemptId"`
	Email         string    `json:"email"`
	AttemptNumber int       `json:"attemptNumber"`
	Score         int       `json:"score"`
	Total         int       `json:"total"`
	Percentage    int       `json:"percentage"`
	Passed        bool      `json:"passed"`
	CompletedAt   time.Time `json:"completedAt"`
}

// Complete finalizes an attempt exactly once: scores the submitted
// answers against the full question set, records elapsed time, then
// publishes a result event and queues the admin notification email.
// Notification failures never fail the completion.
func (s *AttemptService) Complete(ctx context.Context, attemptID uuid.UUID, answers []model.Answer) (*model.Attempt, error) {
	attempt, err := s.attemptRepo.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	if attempt.Completed() {
		return nil, ErrAttemptCompleted
	}

	questions, err := s.questionRepo.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	if answers == nil {
		answers = []model.Answer{}
	}
	attempt.Answers = answers

	res := quiz.Score(questions, answers)
	elapsed := quiz.Elapsed(attempt.StartedAt, time.Now())

	if err := s.attemptRepo.Complete(ctx, attempt, res, elapsed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race against another completion of the same attempt.
			return nil, ErrAttemptCompleted
		}
		return nil, fmt.Errorf("complete attempt: %w", err)
	}

	s.log.Info().
		Str("email", attempt.Email).
		Int("score", res.Score).
		Int("total", res.Total).
		Int("percentage", res.Percentage).
		Bool("passed", res.Passed).
		Msg("Attempt completed")

	// Autosave cache is stale now.
	s.rdb.Del(ctx, config.CacheKey.AttemptAnswersKey(attemptID.String()),
		config.CacheKey.AttemptStartKey(attemptID.String()))

	s.publishResult(ctx, attempt, res)
	s.queueNotification(ctx, attempt)

	return attempt, nil
}

func (s *AttemptService) publishResult(ctx context.Context, attempt *model.Attempt, res quiz.Result) {
	event, err := json.Marshal(ResultEvent{
		AttemptID:     attempt.ID.String(),
		Email:         attempt.Email,
		AttemptNumber: attempt.AttemptNumber,
		Score:         res.Score,
		Total:         res.Total,
		Percentage:    res.Percentage,
		Passed:        res.Passed,
		CompletedAt:   *attempt.CompletedAt,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal result event failed")
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.ResultEventsChannel(), event).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Publish result event failed")
	}
}

func (s *AttemptService) queueNotification(ctx context.Context, attempt *model.Attempt) {
	if s.cfg.AdminNotifyEmail == "" {
		return
	}
	payload, err := json.Marshal(attempt)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal notification payload failed")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.SendResultsQueue, payload).Err(); err != nil {
		s.log.Warn().Err(err).
			Str("attempt_id", attempt.ID.String()).
			Msg("Queue admin notification failed")
	}
}

// ListResults retrieves completed attempts for the admin result views.
func (s *AttemptService) ListResults(ctx context.Context, email string, page, perPage int) ([]model.Attempt, int64, error) {
	if email != "" {
		email = model.NormalizeEmail(email)
	}
	attempts, total, err := s.attemptRepo.ListCompleted(ctx, email, page, perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("list results: %w", err)
	}
	if attempts == nil {
		attempts = []model.Attempt{}
	}
	return attempts, total, nil
}
