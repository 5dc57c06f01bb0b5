package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
	"github.com/quizcert/quizcert-backend/internal/validator"
)

// CodeHandler handles company access code verification and redemption.
type CodeHandler struct {
	codeService *service.CodeService
}

// NewCodeHandler creates a new CodeHandler.
func NewCodeHandler(codeService *service.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

// Verify godoc
// POST /verify-company-code
// Checks a code without consuming it.
func (h *CodeHandler) Verify(c *gin.Context) {
	var req model.VerifyCodeRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	result, err := h.codeService.Verify(c.Request.Context(), req.Code)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":       result.Valid,
		"companyId":   result.CompanyID,
		"codeId":      result.CodeID,
		"companyName": result.CompanyName,
	})
}

// MarkUsed godoc
// POST /mark-code-used
// Consumes a verified code and burns one company credit atomically.
func (h *CodeHandler) MarkUsed(c *gin.Context) {
	var req model.MarkCodeUsedRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.codeService.MarkUsed(c.Request.Context(), req.CodeID, req.UserID, req.FormationIDs); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SendCodes godoc
// POST /send-company-codes
// Emails a batch of codes; per-recipient failures are reported, not fatal.
func (h *CodeHandler) SendCodes(c *gin.Context) {
	var req model.SendCompanyCodesRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	summary, results, err := h.codeService.SendCodes(c.Request.Context(), req.CompanyID, req.Codes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"results": results,
	})
}
