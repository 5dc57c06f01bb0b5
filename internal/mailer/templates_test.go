package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
)

func TestResultsBody(t *testing.T) {
	res := quiz.Result{Score: 7, Total: 10, Percentage: 70, Passed: true}
	html, text := resultsBody("alice@example.com", res, 754, "2026-08-30T10:00:00Z")

	for _, want := range []string{"7 / 10", "70%", "PASSED", "12:34"} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if !strings.Contains(text, "7/10 (70%)") || !strings.Contains(text, "12:34") {
		t.Errorf("text body incomplete: %q", text)
	}
}

func TestResultsBodyFailedVerdict(t *testing.T) {
	res := quiz.Result{Score: 3, Total: 10, Percentage: 30}
	html, _ := resultsBody("bob@example.com", res, 60, "")

	if !strings.Contains(html, "FAILED") || strings.Contains(html, "PASSED") {
		t.Error("failed attempt should render the FAILED verdict")
	}
}

func TestAdminNotificationBody(t *testing.T) {
	score, total, pct := 9, 10, 90
	passed := true
	elapsed := 125
	now := time.Now()
	attempt := &model.Attempt{
		Email:          "alice@example.com",
		AttemptNumber:  2,
		CompletedAt:    &now,
		Score:          &score,
		Total:          &total,
		Percentage:     &pct,
		Passed:         &passed,
		ElapsedSeconds: &elapsed,
	}

	html, text := adminNotificationBody(attempt)
	for _, want := range []string{"alice@example.com", "attempt 2", "9 / 10", "02:05"} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	if !strings.Contains(text, "attempt 2") {
		t.Errorf("text body incomplete: %q", text)
	}
}

func TestCompanyCodeBody(t *testing.T) {
	html, text := companyCodeBody("AB12CD3", "Acme Corp")

	if !strings.Contains(html, "AB12CD3") || !strings.Contains(html, "Acme Corp") {
		t.Error("html body should carry the code and company name")
	}
	if !strings.Contains(text, "AB12CD3") {
		t.Error("text body should carry the code")
	}
}
