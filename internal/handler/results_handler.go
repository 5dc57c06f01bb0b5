package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/service"
)

const (
	defaultPerPage = 25
	maxPerPage     = 200
)

// ResultsHandler serves completed attempts to the admin dashboard.
type ResultsHandler struct {
	attemptService *service.AttemptService
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(attemptService *service.AttemptService) *ResultsHandler {
	return &ResultsHandler{attemptService: attemptService}
}

// List godoc
// GET /admin/results?email=&page=&perPage=
func (h *ResultsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", strconv.Itoa(defaultPerPage)))
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	attempts, total, err := h.attemptService.ListResults(c.Request.Context(), c.Query("email"), page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": attempts,
		"pagination": gin.H{
			"page":    page,
			"perPage": perPage,
			"total":   total,
		},
	})
}
