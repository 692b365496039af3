package httpapi

import (
	"github.com/alexanderramin/skillswap/internal/httpapi/handlers"
	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/logger"
	"github.com/alexanderramin/skillswap/internal/mentor"
	"github.com/alexanderramin/skillswap/internal/service"
)

// Deps is everything the REST surface serves from.
type Deps struct {
	Log         *logger.Logger
	JWTSecret   string
	CORSOrigins []string

	Bookings     service.BookingService
	Achievements service.AchievementService
	Teachers     service.TeacherService
	Profiles     service.ProfileService
	Mentor       mentor.Service
	Transcripts  *mentor.Transcripts
}

// NewRouterConfig builds every handler from d.
func NewRouterConfig(d Deps) RouterConfig {
	return RouterConfig{
		Log:                d.Log,
		CORSOrigins:        d.CORSOrigins,
		AuthMiddleware:     middleware.NewAuthMiddleware(d.Log, d.JWTSecret),
		HealthHandler:      handlers.NewHealthHandler(),
		SessionHandler:     handlers.NewSessionHandler(d.Bookings),
		AchievementHandler: handlers.NewAchievementHandler(d.Achievements),
		TeacherHandler:     handlers.NewTeacherHandler(d.Teachers),
		ProfileHandler:     handlers.NewProfileHandler(d.Profiles),
		ChatHandler:        handlers.NewChatHandler(d.Mentor, d.Transcripts),
	}
}
