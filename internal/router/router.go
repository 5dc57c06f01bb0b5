package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizcert/quizcert-backend/internal/config"
	"github.com/quizcert/quizcert-backend/internal/handler"
	"github.com/quizcert/quizcert-backend/internal/middleware"
	"github.com/quizcert/quizcert-backend/internal/response"
	"github.com/quizcert/quizcert-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Quiz        *handler.QuizHandler
	Question    *handler.QuestionHandler
	Participant *handler.ParticipantHandler
	Code        *handler.CodeHandler
	Results     *handler.ResultsHandler
	WS          *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 1. Public Quiz Flow ───────────────────────────────────────────
	// Participants are identified by email, not by token. The paths are
	// flat because the frontend calls them directly.
	router.POST("/check-email", handlers.Quiz.CheckEmail)
	router.POST("/verify-company-code", handlers.Code.Verify)
	router.POST("/mark-code-used", handlers.Code.MarkUsed)
	router.POST("/send-company-codes",
		middleware.RequireAdminJWT(authService), handlers.Code.SendCodes)

	quizAPI := router.Group("/quiz")
	{
		quizAPI.POST("/check-attempts", handlers.Quiz.CheckAttempts)
		quizAPI.POST("/start", handlers.Quiz.Start)
		quizAPI.POST("/autosave", handlers.Quiz.Autosave)
		quizAPI.POST("/complete", handlers.Quiz.Complete)
		quizAPI.GET("/questions", handlers.Quiz.Questions)
		quizAPI.POST("/import-questions", handlers.Question.Import)
		quizAPI.POST("/send-results-email", handlers.Quiz.SendResultsEmail)
	}

	// ─── 2. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/auth")
	{
		auth.POST("/admin/login", handlers.Auth.AdminLogin)
		auth.GET("/admin/me", middleware.RequireAdminJWT(authService), handlers.Auth.AdminProfile)
	}

	// ─── 3. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/questions", handlers.Question.List)
		adminAPI.POST("/questions", handlers.Question.Create)
		adminAPI.PUT("/questions/:id", handlers.Question.Update)

		adminAPI.GET("/participants", handlers.Participant.List)
		adminAPI.POST("/participants", handlers.Participant.Upsert)
		adminAPI.POST("/participants/import", handlers.Participant.ImportXLSX)
		adminAPI.POST("/participants/import-json", handlers.Participant.ImportJSON)
		adminAPI.GET("/participants/export", handlers.Participant.ExportXLSX)
		adminAPI.POST("/participants/:email/allow-retry", handlers.Participant.AllowRetry)

		adminAPI.GET("/results", handlers.Results.List)
	}

	// ─── 4. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/results/stream", handlers.WS.ResultsStream)
	}

	return router
}
