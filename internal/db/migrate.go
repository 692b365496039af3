package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Migrate runs all schema migrations and seeds the achievement catalog.
// Statements are idempotent so the whole list runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedAchievementCatalog(context.Background(), db); err != nil {
		return fmt.Errorf("seeding achievement catalog: %w", err)
	}
	return nil
}

type catalogSeed struct {
	id, name, description, kind string
	threshold                   int
}

// defaultCatalog is inserted once; existing rows with the same id are left alone.
var defaultCatalog = []catalogSeed{
	{"first-session", "First Steps", "Book your first learning session", "sessions", 1},
	{"session-regular", "Regular Learner", "Book 10 learning sessions", "sessions", 10},
	{"first-connection", "Making Friends", "Connect with your first teacher", "connections", 1},
	{"networker", "Networker", "Connect with 10 people", "connections", 10},
	{"first-skill", "Sharing is Caring", "Add your first skill to teach", "skills", 1},
	{"polymath", "Polymath", "List 5 skills you can teach", "skills", 5},
	{"five-star", "Five Star", "Receive a 5-star rating", "ratings", 5},
	{"mentor", "Mentor", "Teach 25 sessions", "teaching", 25},
}

func seedAchievementCatalog(ctx context.Context, db *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range defaultCatalog {
		_, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO achievements (id, name, description, type, threshold_value, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.id, s.name, s.description, s.kind, s.threshold, now,
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", s.id, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS achievements (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		type            TEXT NOT NULL DEFAULT '',
		threshold_value INTEGER NOT NULL DEFAULT 1,
		created_at      TEXT NOT NULL
	)`,

	`ALTER TABLE achievements ADD COLUMN icon TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS user_achievements (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		achievement_id TEXT NOT NULL REFERENCES achievements(id) ON DELETE CASCADE,
		earned_at      TEXT NOT NULL,
		UNIQUE(user_id, achievement_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)`,

	`CREATE TABLE IF NOT EXISTS user_sessions (
		user_id       TEXT PRIMARY KEY,
		sessions_json TEXT NOT NULL DEFAULT '[]',
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		user_id      TEXT PRIMARY KEY,
		display_name TEXT NOT NULL DEFAULT '',
		bio          TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		avatar_url   TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS user_skills (
		user_id    TEXT NOT NULL,
		kind       TEXT NOT NULL CHECK(kind IN ('teach','learn')),
		skills     TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS teachers (
		id            TEXT PRIMARY KEY,
		user_id       TEXT,
		name          TEXT NOT NULL,
		avatar        TEXT NOT NULL DEFAULT '',
		skills        TEXT NOT NULL DEFAULT '[]',
		rating        REAL NOT NULL DEFAULT 5.0,
		review_count  INTEGER NOT NULL DEFAULT 0,
		hourly_rate   INTEGER NOT NULL,
		location      TEXT NOT NULL DEFAULT 'Remote',
		availability  TEXT NOT NULL DEFAULT '',
		bio           TEXT NOT NULL DEFAULT '',
		experience    TEXT NOT NULL DEFAULT '',
		response_time TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_teachers_user ON teachers(user_id) WHERE user_id IS NOT NULL`,
}
