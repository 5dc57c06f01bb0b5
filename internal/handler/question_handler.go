package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
	"github.com/quizcert/quizcert-backend/internal/validator"
)

// QuestionHandler handles question import and administration.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// Import godoc
// POST /quiz/import-questions
// Bulk upserts questions; one bad record never aborts the batch.
func (h *QuestionHandler) Import(c *gin.Context) {
	var req model.ImportQuestionsRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	report := h.questionService.Import(c.Request.Context(), req.Questions)

	c.JSON(http.StatusOK, gin.H{"results": report})
}

// List godoc
// GET /admin/questions
// Returns all questions with correct answers, for editing.
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Create godoc
// POST /admin/questions
// Creates a single question.
func (h *QuestionHandler) Create(c *gin.Context) {
	var raw model.RawQuestion
	if msg := validator.Bind(c, &raw); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), raw)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

// Update godoc
// PUT /admin/questions/:id
// Partially updates an existing question.
func (h *QuestionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateQuestionRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}
