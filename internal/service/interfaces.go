package service

import (
	"context"
	"time"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/mentor"
)

type AchievementService interface {
	Catalog(ctx context.Context) ([]*domain.Achievement, error)
	Overview(ctx context.Context, userID string) (*AchievementOverview, error)
	Award(ctx context.Context, userID, achievementID string) (*domain.EarnedAchievement, error)
}

// BookingService runs the booking state machine against the user's stored
// collection. Read failures show up as notices on the result; reads degrade
// to an empty collection, while Schedule and Cancel refuse to write over a
// collection they could not read and return domain.ErrCollaboratorUnavailable.
// Write failures are logged only.
type BookingService interface {
	List(ctx context.Context, userID string, upcomingOnly bool) *SessionList
	Schedule(ctx context.Context, userID string, draft domain.SessionDraft) (*ScheduleResult, error)
	Cancel(ctx context.Context, userID, sessionID string) (*CancelResult, error)
	Calendar(ctx context.Context, userID string, month time.Time) *CalendarView
	OnDate(ctx context.Context, userID string, date time.Time) *SessionList
}

type TeacherService interface {
	List(ctx context.Context) ([]*domain.Teacher, error)
	Search(ctx context.Context, query, skill string) ([]*domain.Teacher, error)
	EnsureSeeded(ctx context.Context) (int, error)
	Become(ctx context.Context, userID, name string, app domain.TeacherApplication) (*domain.Teacher, error)
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	Skills(ctx context.Context, userID string) (*domain.SkillLists, error)
	AddSkill(ctx context.Context, userID string, kind domain.SkillKind, name string) (*domain.SkillLists, error)
	RemoveSkill(ctx context.Context, userID string, kind domain.SkillKind, name string) (*domain.SkillLists, error)
	AvailableSkills(ctx context.Context) ([]string, error)

	// MentorContext gathers what the chat mentor personalizes its prompt with.
	MentorContext(ctx context.Context, userID string) (*mentor.UserContext, error)
}

// AchievementOverview is everything the achievements page shows.
type AchievementOverview struct {
	Summary      ProgressSummary   `json:"summary"`
	Stats        UserStats         `json:"stats"`
	Achievements []AchievementView `json:"achievements"`
}

type ProgressSummary struct {
	TotalPoints        int     `json:"total_points"`
	Level              int     `json:"level"`
	CurrentLevelPoints int     `json:"current_level_points"`
	NextLevelPoints    int     `json:"next_level_points"`
	ProgressPct        float64 `json:"progress_pct"`
	Earned             int     `json:"earned"`
}

type UserStats struct {
	SessionsBooked int     `json:"sessions_booked"`
	SkillsTaught   int     `json:"skills_taught"`
	SkillsLearned  int     `json:"skills_learned"`
	Rating         float64 `json:"rating"`
}

type AchievementView struct {
	domain.Achievement
	Earned   bool          `json:"earned"`
	EarnedAt *time.Time    `json:"earned_at,omitempty"`
	Points   int           `json:"points"`
	Rarity   domain.Rarity `json:"rarity"`
}

type SessionList struct {
	Sessions []domain.Session `json:"sessions"`
	Notices  []booking.Notice `json:"notices,omitempty"`
}

type ScheduleResult struct {
	Session *domain.Session  `json:"session,omitempty"`
	Notices []booking.Notice `json:"notices,omitempty"`
}

type CancelResult struct {
	Removed bool             `json:"removed"`
	Notices []booking.Notice `json:"notices,omitempty"`
}

type CalendarView struct {
	Month   time.Time          `json:"month"`
	Cells   []*booking.DayCell `json:"cells"`
	Notices []booking.Notice   `json:"notices,omitempty"`
}
