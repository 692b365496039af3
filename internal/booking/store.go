package booking

import (
	"context"

	"github.com/alexanderramin/skillswap/internal/domain"
)

// Store is the per-user keyed session blob. PutSessions replaces the whole
// collection; there is no per-record write.
type Store interface {
	GetSessions(ctx context.Context, userID string) ([]domain.Session, error)
	PutSessions(ctx context.Context, userID string, sessions []domain.Session) error
}

// Notifier receives the user-visible toasts emitted by booking operations.
type Notifier interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Warning(string) {}
func (NopNotifier) Error(string)   {}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// NoticeLog is a Notifier that keeps every notice in order. The CLI and HTTP
// layers use it to report toasts back to the caller.
type NoticeLog struct {
	Notices []Notice
}

func (l *NoticeLog) Success(msg string) { l.add(NoticeSuccess, msg) }
func (l *NoticeLog) Warning(msg string) { l.add(NoticeWarning, msg) }
func (l *NoticeLog) Error(msg string)   { l.add(NoticeError, msg) }

func (l *NoticeLog) add(level NoticeLevel, msg string) {
	l.Notices = append(l.Notices, Notice{Level: level, Message: msg})
}

// Last returns the most recent notice, if any.
func (l *NoticeLog) Last() (Notice, bool) {
	if len(l.Notices) == 0 {
		return Notice{}, false
	}
	return l.Notices[len(l.Notices)-1], true
}
