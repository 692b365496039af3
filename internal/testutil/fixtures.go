package testutil

import (
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.Session)

func WithCounterpart(name string) SessionOption {
	return func(s *domain.Session) {
		s.Counterpart = name
	}
}

func WithStatus(status domain.SessionStatus) SessionOption {
	return func(s *domain.Session) {
		s.Status = status
	}
}

func WithMode(mode domain.DeliveryMode) SessionOption {
	return func(s *domain.Session) {
		s.Mode = mode
	}
}

func WithDuration(min int) SessionOption {
	return func(s *domain.Session) {
		s.DurationMin = min
	}
}

func NewTestSession(skill, date, clock string, opts ...SessionOption) domain.Session {
	s := domain.Session{
		ID:          uuid.New().String(),
		Skill:       skill,
		Counterpart: "Test Teacher",
		Date:        date,
		Time:        clock,
		DurationMin: 60,
		Mode:        domain.ModeVideo,
		Status:      domain.SessionPending,
		Avatar:      domain.DefaultAvatar,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Achievement options
type AchievementOption func(*domain.Achievement)

func WithAchievementType(t string) AchievementOption {
	return func(a *domain.Achievement) {
		a.Type = t
	}
}

func WithThreshold(v int) AchievementOption {
	return func(a *domain.Achievement) {
		a.ThresholdValue = v
	}
}

func NewTestAchievement(name string, opts ...AchievementOption) *domain.Achievement {
	a := &domain.Achievement{
		ID:             uuid.New().String(),
		Name:           name,
		Description:    name + " description",
		Type:           domain.AchievementSessions,
		ThresholdValue: 1,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Teacher options
type TeacherOption func(*domain.Teacher)

func WithSkills(skills ...string) TeacherOption {
	return func(t *domain.Teacher) {
		t.Skills = skills
	}
}

func WithRate(rate int) TeacherOption {
	return func(t *domain.Teacher) {
		t.HourlyRate = rate
	}
}

func WithBio(bio string) TeacherOption {
	return func(t *domain.Teacher) {
		t.Bio = bio
	}
}

func NewTestTeacher(name string, opts ...TeacherOption) *domain.Teacher {
	t := &domain.Teacher{
		ID:           uuid.New().String(),
		Name:         name,
		Avatar:       domain.DefaultAvatar,
		Skills:       []string{"Go"},
		Rating:       4.5,
		ReviewCount:  10,
		HourlyRate:   40,
		Location:     "Remote",
		Availability: "Available now",
		Bio:          name + " teaches things",
		Experience:   "3 years",
		ResponseTime: "< 1 hour",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
