package cli

import (
	"time"

	"github.com/alexanderramin/skillswap/internal/config"
	"github.com/alexanderramin/skillswap/internal/logger"
	"github.com/alexanderramin/skillswap/internal/mentor"
	"github.com/alexanderramin/skillswap/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Config config.Config
	Log    *logger.Logger

	Bookings     service.BookingService
	Achievements service.AchievementService
	Teachers     service.TeacherService
	Profiles     service.ProfileService

	Mentor      mentor.Service
	Transcripts *mentor.Transcripts

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// calendar TUI only run when it returns true.
	IsInteractive func() bool

	// Now defaults to time.Now.
	Now func() time.Time

	// UserID is the acting user, set by the --user flag.
	UserID string
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}
