package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
)

// Mailer sends transactional email through SendGrid.
type Mailer struct {
	client *sendgrid.Client
	from   *mail.Email
	log    zerolog.Logger
}

// New creates a Mailer from configuration. Constructed once at startup
// and passed in explicitly; there is no ambient singleton.
func New(cfg *config.Config, log zerolog.Logger) *Mailer {
	return &Mailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   mail.NewEmail(cfg.EmailFromName, cfg.EmailFrom),
		log:    log.With().Str("component", "mailer").Logger(),
	}
}

// Send delivers one message and returns the provider-assigned message ID
// from the X-Message-Id response header.
func (m *Mailer) Send(ctx context.Context, toName, toAddr, subject, htmlBody, textBody string) (string, error) {
	msg := mail.NewSingleEmail(m.from, subject, mail.NewEmail(toName, toAddr), textBody, htmlBody)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	var messageID string
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	m.log.Info().
		Str("to", toAddr).
		Str("subject", subject).
		Str("message_id", messageID).
		Msg("Email sent")

	return messageID, nil
}

// SendResults emails a participant their final quiz outcome.
func (m *Mailer) SendResults(ctx context.Context, toAddr string, res quiz.Result, timeSpentSeconds int, completedAt string) (string, error) {
	subject := "Your quiz results"
	if res.Passed {
		subject = "Congratulations, you passed the quiz"
	}
	html, text := resultsBody(toAddr, res, timeSpentSeconds, completedAt)
	return m.Send(ctx, "", toAddr, subject, html, text)
}

// SendAdminNotification notifies an administrator that an attempt completed.
func (m *Mailer) SendAdminNotification(ctx context.Context, toAddr string, attempt *model.Attempt) (string, error) {
	subject := fmt.Sprintf("Quiz completed: %s (attempt %d)", attempt.Email, attempt.AttemptNumber)
	html, text := adminNotificationBody(attempt)
	return m.Send(ctx, "", toAddr, subject, html, text)
}

// SendCompanyCode emails one access code to a recipient.
func (m *Mailer) SendCompanyCode(ctx context.Context, toAddr, code, companyName string) (string, error) {
	subject := fmt.Sprintf("Your access code from %s", companyName)
	html, text := companyCodeBody(code, companyName)
	return m.Send(ctx, "", toAddr, subject, html, text)
}
