package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
)

type SQLiteTeacherRepo struct {
	db db.DBTX
}

func NewSQLiteTeacherRepo(conn db.DBTX) *SQLiteTeacherRepo {
	return &SQLiteTeacherRepo{db: conn}
}

const teacherColumns = `id, user_id, name, avatar, skills, rating, review_count, hourly_rate,
	location, availability, bio, experience, response_time, created_at`

func (r *SQLiteTeacherRepo) Create(ctx context.Context, t *domain.Teacher) error {
	skills, err := encodeStrings(t.Skills)
	if err != nil {
		return err
	}
	var userID any
	if t.UserID != "" {
		userID = t.UserID
	}
	query := `INSERT INTO teachers (` + teacherColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID, userID, t.Name, t.Avatar, skills, t.Rating, t.ReviewCount, t.HourlyRate,
		t.Location, t.Availability, t.Bio, t.Experience, t.ResponseTime,
		t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("teacher for user %s: %w", t.UserID, ErrDuplicate)
		}
		return fmt.Errorf("inserting teacher: %w", err)
	}
	return nil
}

func (r *SQLiteTeacherRepo) GetByID(ctx context.Context, id string) (*domain.Teacher, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = ?`, id)
	return r.scanOne(row, "teacher "+id)
}

func (r *SQLiteTeacherRepo) GetByUserID(ctx context.Context, userID string) (*domain.Teacher, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE user_id = ?`, userID)
	return r.scanOne(row, "teacher for user "+userID)
}

func (r *SQLiteTeacherRepo) List(ctx context.Context) ([]*domain.Teacher, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+teacherColumns+` FROM teachers ORDER BY rating DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("listing teachers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Teacher
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteTeacherRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting teachers: %w", err)
	}
	return n, nil
}

func (r *SQLiteTeacherRepo) scanOne(row *sql.Row, what string) (*domain.Teacher, error) {
	t, err := scanTeacher(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return t, err
}

func scanTeacher(row rowScanner) (*domain.Teacher, error) {
	var t domain.Teacher
	var userID sql.NullString
	var skills, createdAt string
	err := row.Scan(
		&t.ID, &userID, &t.Name, &t.Avatar, &skills, &t.Rating, &t.ReviewCount, &t.HourlyRate,
		&t.Location, &t.Availability, &t.Bio, &t.Experience, &t.ResponseTime, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning teacher: %w", err)
	}
	t.UserID = userID.String
	if t.Skills, err = decodeStrings(skills); err != nil {
		return nil, err
	}
	t.CreatedAt = parseTime(createdAt)
	return &t, nil
}
