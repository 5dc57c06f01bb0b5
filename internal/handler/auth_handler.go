package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/middleware"
	"github.com/quizcert/quizcert-backend/internal/model"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
	"github.com/quizcert/quizcert-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// AdminLogin godoc
// POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if msg := validator.Bind(c, &req); msg != "" {
		response.Error(c, http.StatusBadRequest, msg)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// AdminProfile godoc
// GET /auth/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) AdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Error(c, http.StatusUnauthorized, "admin token required")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
