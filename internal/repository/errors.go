package repository

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique key other than the earned pair collides.
	ErrDuplicate = errors.New("already exists")

	// ErrAlreadyEarned is returned when a user is awarded an achievement
	// they already hold.
	ErrAlreadyEarned = errors.New("achievement already earned")
)

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
