package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
)

// handleServiceError translates service-layer errors into the flat
// error response contract. Unknown errors become 500s with the message
// surfaced so the client can display what went wrong.
func handleServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		response.Error(c, http.StatusBadRequest, ve.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrParticipantNotFound),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrCodeNotFound),
		errors.Is(err, service.ErrCompanyNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAdmin):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAttemptLimitReached),
		errors.Is(err, service.ErrAttemptCompleted),
		errors.Is(err, service.ErrCodeInvalid),
		errors.Is(err, service.ErrCodeUsed),
		errors.Is(err, service.ErrCodeExpired),
		errors.Is(err, service.ErrCompanyNoCredits):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
