package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/mailer"
	"github.com/quizcert/quizcert-backend/internal/model"
)

// NotifyWorker consumes the send-results queue and emails the admin a
// summary of each completed attempt. A failed send is logged and dropped
// rather than requeued, so one bad address cannot wedge the queue.
type NotifyWorker struct {
	mailer *mailer.Mailer
	rdb    *redis.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// NewNotifyWorker creates a new NotifyWorker.
func NewNotifyWorker(m *mailer.Mailer, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *NotifyWorker {
	return &NotifyWorker{
		mailer: m,
		rdb:    rdb,
		cfg:    cfg,
		log:    log.With().Str("component", "notify_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *NotifyWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *NotifyWorker) processNext(ctx context.Context) {
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.SendResultsQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var attempt model.Attempt
	if err := json.Unmarshal([]byte(result[1]), &attempt); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	msgID, err := w.mailer.SendAdminNotification(ctx, w.cfg.AdminNotifyEmail, &attempt)
	if err != nil {
		w.log.Error().Err(err).
			Str("attempt_id", attempt.ID.String()).
			Str("email", attempt.Email).
			Msg("Admin notification failed")
		return
	}

	w.log.Info().
		Str("attempt_id", attempt.ID.String()).
		Str("message_id", msgID).
		Msg("Admin notification sent")
}
