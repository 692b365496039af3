package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/httpapi/handlers"
	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	CORSOrigins    []string
	AuthMiddleware *middleware.AuthMiddleware

	HealthHandler      *handlers.HealthHandler
	SessionHandler     *handlers.SessionHandler
	AchievementHandler *handlers.AchievementHandler
	TeacherHandler     *handlers.TeacherHandler
	ProfileHandler     *handlers.ProfileHandler
	ChatHandler        *handlers.ChatHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSOrigins))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}
	{
		// Sessions
		if cfg.SessionHandler != nil {
			api.GET("/sessions", cfg.SessionHandler.List)
			api.POST("/sessions", cfg.SessionHandler.Create)
			api.DELETE("/sessions/:id", cfg.SessionHandler.Cancel)
			api.GET("/sessions/calendar", cfg.SessionHandler.Calendar)
			api.GET("/sessions/on/:date", cfg.SessionHandler.OnDate)
		}

		// Achievements
		if cfg.AchievementHandler != nil {
			api.GET("/achievements", cfg.AchievementHandler.Overview)
			api.GET("/achievements/catalog", cfg.AchievementHandler.Catalog)
			api.POST("/achievements/:id/award", cfg.AchievementHandler.Award)
		}

		// Teachers
		if cfg.TeacherHandler != nil {
			api.GET("/teachers", cfg.TeacherHandler.List)
			api.POST("/teachers", cfg.TeacherHandler.Become)
		}

		// Profile
		if cfg.ProfileHandler != nil {
			api.GET("/profile", cfg.ProfileHandler.Get)
			api.PUT("/profile", cfg.ProfileHandler.Update)
			api.POST("/profile/skills", cfg.ProfileHandler.AddSkill)
			api.DELETE("/profile/skills/:kind/:name", cfg.ProfileHandler.RemoveSkill)
			api.GET("/skills", cfg.ProfileHandler.AvailableSkills)
		}

		// Mentor chat
		if cfg.ChatHandler != nil {
			api.GET("/chat", cfg.ChatHandler.Transcript)
			api.POST("/chat", cfg.ChatHandler.Send)
		}
	}

	return r
}
