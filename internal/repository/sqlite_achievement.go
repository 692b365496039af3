package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/google/uuid"
)

// SQLiteAchievementRepo implements AchievementRepo over the achievements and
// user_achievements tables.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

const achievementColumns = `id, name, description, icon, type, threshold_value, created_at`

func (r *SQLiteAchievementRepo) ListCatalog(ctx context.Context) ([]*domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements ORDER BY threshold_value, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing achievement catalog: %w", err)
	}
	defer rows.Close()

	var out []*domain.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = ?`
	a, err := scanAchievement(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("achievement %s: %w", id, ErrNotFound)
	}
	return a, err
}

func (r *SQLiteAchievementRepo) CreateCatalogEntry(ctx context.Context, a *domain.Achievement) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO achievements (` + achievementColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Description, a.Icon, a.Type, a.ThresholdValue,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting achievement: %w", err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) ListEarned(ctx context.Context, userID string) ([]domain.EarnedAchievement, error) {
	query := `SELECT id, user_id, achievement_id, earned_at
		FROM user_achievements WHERE user_id = ? ORDER BY earned_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing earned achievements: %w", err)
	}
	defer rows.Close()

	var out []domain.EarnedAchievement
	for rows.Next() {
		var e domain.EarnedAchievement
		var earnedAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.AchievementID, &earnedAt); err != nil {
			return nil, fmt.Errorf("scanning earned achievement: %w", err)
		}
		e.EarnedAt = parseTime(earnedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Award records that userID earned achievementID. The (user, achievement)
// pair is unique; a second award returns ErrAlreadyEarned.
func (r *SQLiteAchievementRepo) Award(ctx context.Context, userID, achievementID string, earnedAt time.Time) (*domain.EarnedAchievement, error) {
	e := &domain.EarnedAchievement{
		ID:            uuid.New().String(),
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      earnedAt.UTC().Truncate(time.Second),
	}
	query := `INSERT INTO user_achievements (id, user_id, achievement_id, earned_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.AchievementID, e.EarnedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("awarding %s: %w", achievementID, ErrAlreadyEarned)
		}
		return nil, fmt.Errorf("awarding %s: %w", achievementID, err)
	}
	return e, nil
}

func (r *SQLiteAchievementRepo) CountEarned(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_achievements WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting earned achievements: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAchievement(row rowScanner) (*domain.Achievement, error) {
	var a domain.Achievement
	var createdAt string
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Type, &a.ThresholdValue, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning achievement: %w", err)
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}
