package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/mailer"
	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/quiz"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
	"github.com/quizcert/quizcert-backend/internal/validator"
)

// QuizHandler handles the participant-facing quiz endpoints.
type QuizHandler struct {
	attemptService  *service.AttemptService
	questionService *service.QuestionService
	mailer          *mailer.Mailer
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(
	attemptService *service.AttemptService,
	questionService *service.QuestionService,
	m *mailer.Mailer,
) *QuizHandler {
	return &QuizHandler{
		attemptService:  attemptService,
		questionService: questionService,
		mailer:          m,
	}
}

// CheckEmail godoc
// POST /check-email
// Looks up a participant account by email.
func (h *QuizHandler) CheckEmail(c *gin.Context) {
	var req model.CheckEmailRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	exists, userID, err := h.attemptService.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists": exists,
		"userId": userID,
	})
}

// CheckAttempts godoc
// POST /quiz/check-attempts
// Lists a participant's attempts so the client can decide eligibility.
func (h *QuizHandler) CheckAttempts(c *gin.Context) {
	var req model.CheckAttemptsRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	attempts, err := h.attemptService.ListAttempts(c.Request.Context(), req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// Start godoc
// POST /quiz/start
// Opens a new attempt and returns the sanitized question paper.
func (h *QuizHandler) Start(c *gin.Context) {
	var req model.StartAttemptRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	attempt, questions, durationSeconds, err := h.attemptService.Start(c.Request.Context(), req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt":         attempt,
		"durationSeconds": durationSeconds,
		"questions":       questions,
	})
}

// Autosave godoc
// POST /quiz/autosave
// Accepts a full answer snapshot; persistence happens asynchronously.
func (h *QuizHandler) Autosave(c *gin.Context) {
	var req model.AutosaveRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.attemptService.Autosave(c.Request.Context(), req.AttemptID, req.Answers); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Complete godoc
// POST /quiz/complete
// Grades the final answers and closes the attempt.
func (h *QuizHandler) Complete(c *gin.Context) {
	var req model.CompleteAttemptRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	attempt, err := h.attemptService.Complete(c.Request.Context(), req.AttemptID, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}

// Questions godoc
// GET /quiz/questions
// Returns the ordered question paper without correct answers.
func (h *QuizHandler) Questions(c *gin.Context) {
	questions, err := h.questionService.ListForTaking(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// SendResultsEmail godoc
// POST /quiz/send-results-email
// Emails a result summary to the participant.
func (h *QuizHandler) SendResultsEmail(c *gin.Context) {
	var req model.SendResultsEmailRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	res := quiz.Result{
		Score:      req.Score,
		Total:      req.Total,
		Percentage: req.Percentage,
		Passed:     req.Passed,
	}
	completedAt := ""
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	msgID, err := h.mailer.SendResults(c.Request.Context(),
		model.NormalizeEmail(req.ParticipantEmail), res, req.TimeSpentSeconds, completedAt)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": msgID,
	})
}
