package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
)

type AchievementRepo interface {
	ListCatalog(ctx context.Context) ([]*domain.Achievement, error)
	GetByID(ctx context.Context, id string) (*domain.Achievement, error)
	CreateCatalogEntry(ctx context.Context, a *domain.Achievement) error
	ListEarned(ctx context.Context, userID string) ([]domain.EarnedAchievement, error)
	Award(ctx context.Context, userID, achievementID string, earnedAt time.Time) (*domain.EarnedAchievement, error)
	CountEarned(ctx context.Context, userID string) (int, error)
}

type TeacherRepo interface {
	Create(ctx context.Context, t *domain.Teacher) error
	GetByID(ctx context.Context, id string) (*domain.Teacher, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Teacher, error)
	List(ctx context.Context) ([]*domain.Teacher, error)
	Count(ctx context.Context) (int, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// SkillListRepo stores each (user, kind) skill list as a single value that
// is replaced wholesale on write.
type SkillListRepo interface {
	Get(ctx context.Context, userID string, kind domain.SkillKind) ([]string, error)
	Put(ctx context.Context, userID string, kind domain.SkillKind, skills []string) error
}
