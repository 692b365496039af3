package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
)

// SQLiteSessionStore keeps each user's sessions as one JSON array row.
// It satisfies booking.Store.
type SQLiteSessionStore struct {
	db db.DBTX
}

func NewSQLiteSessionStore(conn db.DBTX) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: conn}
}

// GetSessions returns an empty, non-nil slice for a user with no row.
func (s *SQLiteSessionStore) GetSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT sessions_json FROM user_sessions WHERE user_id = ?`, userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sessions: %w", err)
	}
	return decodeSessions(raw)
}

func (s *SQLiteSessionStore) PutSessions(ctx context.Context, userID string, sessions []domain.Session) error {
	raw, err := encodeSessions(sessions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO user_sessions (user_id, sessions_json, updated_at) VALUES (?, ?, ?)`,
		userID, raw, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("writing sessions: %w", err)
	}
	return nil
}

func encodeSessions(sessions []domain.Session) (string, error) {
	if sessions == nil {
		sessions = []domain.Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return "", fmt.Errorf("encoding sessions: %w", err)
	}
	return string(data), nil
}

func decodeSessions(raw string) ([]domain.Session, error) {
	out := []domain.Session{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	return out, nil
}
