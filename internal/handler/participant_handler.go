package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
	"github.com/quizcert/quizcert-backend/internal/validator"
)

// ParticipantHandler handles participant administration.
type ParticipantHandler struct {
	participantService *service.ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(participantService *service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService}
}

// List godoc
// GET /admin/participants
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.participantService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": participants})
}

// Upsert godoc
// POST /admin/participants
// Creates a participant or updates an existing one by email.
func (h *ParticipantHandler) Upsert(c *gin.Context) {
	var req model.UpsertParticipantRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	participant, err := h.participantService.Upsert(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participant": participant})
}

// ImportJSON godoc
// POST /admin/participants/import-json
func (h *ParticipantHandler) ImportJSON(c *gin.Context) {
	var req model.ImportParticipantsRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	report := h.participantService.ImportJSON(c.Request.Context(), req.Participants)

	c.JSON(http.StatusOK, gin.H{"results": report})
}

// ImportXLSX godoc
// POST /admin/participants/import
// Accepts a multipart `file` field containing an Excel sheet.
func (h *ParticipantHandler) ImportXLSX(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file field is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "cannot open uploaded file")
		return
	}
	defer f.Close()

	report, err := h.participantService.ImportXLSX(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": report})
}

// ExportXLSX godoc
// GET /admin/participants/export
func (h *ParticipantHandler) ExportXLSX(c *gin.Context) {
	data, err := h.participantService.ExportXLSX(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("participants-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// AllowRetry godoc
// POST /admin/participants/:email/allow-retry
// Grants one extra attempt to a participant.
func (h *ParticipantHandler) AllowRetry(c *gin.Context) {
	email := c.Param("email")

	allowed, err := h.participantService.AllowRetry(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":           model.NormalizeEmail(email),
		"allowedAttempts": allowed,
	})
}
