package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
)

type SQLiteSkillListRepo struct {
	db db.DBTX
}

func NewSQLiteSkillListRepo(conn db.DBTX) *SQLiteSkillListRepo {
	return &SQLiteSkillListRepo{db: conn}
}

// Get returns an empty list when the user has never saved one.
func (r *SQLiteSkillListRepo) Get(ctx context.Context, userID string, kind domain.SkillKind) ([]string, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT skills FROM user_skills WHERE user_id = ? AND kind = ?`, userID, string(kind),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s skills: %w", kind, err)
	}
	return decodeStrings(raw)
}

func (r *SQLiteSkillListRepo) Put(ctx context.Context, userID string, kind domain.SkillKind, skills []string) error {
	raw, err := encodeStrings(skills)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_skills (user_id, kind, skills, updated_at) VALUES (?, ?, ?, ?)`,
		userID, string(kind), raw, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("writing %s skills: %w", kind, err)
	}
	return nil
}
