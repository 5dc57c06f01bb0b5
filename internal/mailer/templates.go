package mailer

import (
	"fmt"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
)

// wrapHTML frames a body in the shared email layout.
func wrapHTML(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.score-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3D6DEB; margin: 20px 0; font-size: 18px; }
			.code-box { background: #F0F0F0; padding: 15px; border-radius: 4px; text-align: center; font-size: 24px; letter-spacing: 4px; font-family: monospace; margin: 20px 0; }
			.verdict-pass { color: #28A745; font-weight: bold; }
			.verdict-fail { color: #DC3545; font-weight: bold; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>QUIZCERT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from the QuizCert certification platform.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func verdict(passed bool) (label, class string) {
	if passed {
		return "PASSED", "verdict-pass"
	}
	return "FAILED", "verdict-fail"
}

// resultsBody renders the participant-facing result email.
func resultsBody(email string, res quiz.Result, timeSpentSeconds int, completedAt string) (html, text string) {
	label, class := verdict(res.Passed)
	clock := quiz.FormatClock(timeSpentSeconds)

	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>Here are the results of your quiz attempt:</p>
		<div class="score-box">
			Score: <strong>%d / %d</strong> (%d%%) - <span class="%s">%s</span>
		</div>
		<p>Time spent: <strong>%s</strong></p>
		<p>Completed at: %s</p>
	`, res.Score, res.Total, res.Percentage, class, label, clock, completedAt)

	text = fmt.Sprintf(
		"Quiz results for %s\n\nScore: %d/%d (%d%%) - %s\nTime spent: %s\nCompleted at: %s\n",
		email, res.Score, res.Total, res.Percentage, label, clock, completedAt,
	)
	return wrapHTML("Your Quiz Results", body), text
}

// adminNotificationBody renders the attempt-completed notification.
func adminNotificationBody(a *model.Attempt) (html, text string) {
	res := quiz.Result{}
	if a.Score != nil {
		res.Score = *a.Score
	}
	if a.Total != nil {
		res.Total = *a.Total
	}
	if a.Percentage != nil {
		res.Percentage = *a.Percentage
	}
	if a.Passed != nil {
		res.Passed = *a.Passed
	}
	elapsed := 0
	if a.ElapsedSeconds != nil {
		elapsed = *a.ElapsedSeconds
	}
	label, class := verdict(res.Passed)

	body := fmt.Sprintf(`
		<p>A participant has completed the quiz.</p>
		<div class="score-box">
			<strong>%s</strong> - attempt %d<br>
			Score: <strong>%d / %d</strong> (%d%%) - <span class="%s">%s</span>
		</div>
		<p>Time spent: %s</p>
	`, a.Email, a.AttemptNumber, res.Score, res.Total, res.Percentage, class, label, quiz.FormatClock(elapsed))

	text = fmt.Sprintf(
		"Quiz completed by %s (attempt %d)\nScore: %d/%d (%d%%) - %s\nTime spent: %s\n",
		a.Email, a.AttemptNumber, res.Score, res.Total, res.Percentage, label, quiz.FormatClock(elapsed),
	)
	return wrapHTML("Attempt Completed", body), text
}

// companyCodeBody renders the access-code delivery email.
func companyCodeBody(code, companyName string) (html, text string) {
	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p><strong>%s</strong> has granted you access to the certification quiz.</p>
		<p>Use this single-use code when creating your account:</p>
		<div class="code-box">%s</div>
		<p>The code is personal and expires once redeemed.</p>
	`, companyName, code)

	text = fmt.Sprintf(
		"%s has granted you access to the certification quiz.\n\nYour single-use access code: %s\n",
		companyName, code,
	)
	return wrapHTML("Your Access Code", body), text
}
