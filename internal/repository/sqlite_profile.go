package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
)

type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, display_name, bio, location, avatar_url FROM profiles WHERE user_id = ?`
	var p domain.Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.DisplayName, &p.Bio, &p.Location, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	return &p, nil
}

// Upsert keeps created_at from the first write.
func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	now := nowUTC()
	query := `INSERT INTO profiles (user_id, display_name, bio, location, avatar_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			display_name = excluded.display_name,
			bio          = excluded.bio,
			location     = excluded.location,
			avatar_url   = excluded.avatar_url,
			updated_at   = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.DisplayName, p.Bio, p.Location, p.AvatarURL, now, now)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
