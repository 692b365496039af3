// Package booking holds one user's session collection together with the
// booking dialog and calendar cursor that operate on it.
package booking

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/logger"
)

const (
	MsgMissingFields = "Please fill in all required fields"
	MsgInvalidFields = "Please check the session details"
	MsgScheduled     = "Session scheduled successfully!"
	MsgCancelled     = "Session cancelled successfully"
	MsgLoadFailed    = "Could not load your sessions"
)

const (
	DefaultDurationMin = 60
	DefaultMode        = domain.ModeVideo
	DefaultInlineLimit = 2
)

// ErrDialogClosed is returned when the draft is touched without an open dialog.
var ErrDialogClosed = errors.New("booking dialog is not open")

// Booking is single-caller state for one user. It is not safe for
// concurrent use; callers build one per request or per UI loop.
type Booking struct {
	userID string
	store  Store
	notify Notifier
	log    *logger.Logger
	now    func() time.Time

	defaultDuration int
	defaultMode     domain.DeliveryMode
	inlineLimit     int

	sessions  []domain.Session
	open      bool
	draft     domain.SessionDraft
	reference time.Time
}

type Option func(*Booking)

func WithNotifier(n Notifier) Option {
	return func(b *Booking) {
		if n != nil {
			b.notify = n
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(b *Booking) {
		if l != nil {
			b.log = l
		}
	}
}

// WithClock overrides time.Now for id generation, the today marker and the
// initial calendar month.
func WithClock(now func() time.Time) Option {
	return func(b *Booking) {
		if now != nil {
			b.now = now
		}
	}
}

func WithDefaults(durationMin int, mode domain.DeliveryMode) Option {
	return func(b *Booking) {
		if durationMin > 0 {
			b.defaultDuration = durationMin
		}
		if mode.Valid() {
			b.defaultMode = mode
		}
	}
}

func WithInlineLimit(n int) Option {
	return func(b *Booking) {
		if n > 0 {
			b.inlineLimit = n
		}
	}
}

func New(userID string, store Store, opts ...Option) *Booking {
	b := &Booking{
		userID:          userID,
		store:           store,
		notify:          NopNotifier{},
		log:             logger.Nop(),
		now:             time.Now,
		defaultDuration: DefaultDurationMin,
		defaultMode:     DefaultMode,
		inlineLimit:     DefaultInlineLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With("component", "booking", "user_id", userID)
	b.reference = b.now()
	b.draft = b.emptyDraft()
	return b
}

// Load replaces the in-memory list with the stored collection. A store
// failure degrades to an empty list and an error toast; the error is
// returned so callers that write back can refuse to replace the stored
// collection with the degraded one.
func (b *Booking) Load(ctx context.Context) error {
	sessions, err := b.store.GetSessions(ctx, b.userID)
	if err != nil {
		b.log.Error("loading sessions", "error", err)
		b.sessions = nil
		b.notify.Error(MsgLoadFailed)
		return err
	}
	b.sessions = slices.Clone(sessions)
	return nil
}

func (b *Booking) UserID() string { return b.userID }

// Sessions returns the collection in insertion order.
func (b *Booking) Sessions() []domain.Session {
	return slices.Clone(b.sessions)
}

// List returns the collection ordered by start time. Ties keep insertion order.
func (b *Booking) List() []domain.Session {
	out := slices.Clone(b.sessions)
	slices.SortStableFunc(out, func(x, y domain.Session) int {
		if c := strings.Compare(x.Date, y.Date); c != 0 {
			return c
		}
		return strings.Compare(x.Time, y.Time)
	})
	return out
}

// Upcoming is List restricted to sessions starting at or after now.
func (b *Booking) Upcoming() []domain.Session {
	now := b.now()
	var out []domain.Session
	for _, s := range b.List() {
		if !s.StartsAt(now.Location()).Before(now) {
			out = append(out, s)
		}
	}
	return out
}

// Dialog

func (b *Booking) emptyDraft() domain.SessionDraft {
	return domain.SessionDraft{DurationMin: b.defaultDuration, Mode: b.defaultMode}
}

func (b *Booking) DialogOpen() bool { return b.open }

// OpenDialog opens the booking dialog. Reopening keeps the current draft.
func (b *Booking) OpenDialog() {
	b.open = true
}

func (b *Booking) Draft() domain.SessionDraft { return b.draft }

func (b *Booking) SetDraft(d domain.SessionDraft) error {
	if !b.open {
		return ErrDialogClosed
	}
	b.draft = d
	return nil
}

// CancelDialog discards the draft and closes the dialog.
func (b *Booking) CancelDialog() {
	b.open = false
	b.draft = b.emptyDraft()
}

// ScheduleSession opens the dialog with d and submits it.
func (b *Booking) ScheduleSession(ctx context.Context, d domain.SessionDraft) (domain.Session, error) {
	b.OpenDialog()
	if err := b.SetDraft(d); err != nil {
		return domain.Session{}, err
	}
	return b.Submit(ctx)
}

// Submit validates the open draft and, when valid, appends a pending session
// and writes the whole collection. On a validation error the dialog stays
// open with the draft exactly as entered.
func (b *Booking) Submit(ctx context.Context) (domain.Session, error) {
	if !b.open {
		return domain.Session{}, ErrDialogClosed
	}

	d := b.draft
	if err := d.Validate(); err != nil {
		var missing *domain.MissingFieldError
		if errors.As(err, &missing) {
			b.notify.Warning(MsgMissingFields)
		} else {
			b.notify.Warning(fmt.Sprintf("%s: %v", MsgInvalidFields, err))
		}
		return domain.Session{}, err
	}

	s := domain.Session{
		ID:          b.nextID(),
		Skill:       strings.TrimSpace(d.Skill),
		Counterpart: strings.TrimSpace(d.Counterpart),
		Date:        strings.TrimSpace(d.Date),
		Time:        strings.TrimSpace(d.Time),
		DurationMin: domain.IntOrDefault(b.defaultDuration, d.DurationMin),
		Mode:        d.Mode,
		Status:      domain.SessionPending,
		Notes:       strings.TrimSpace(d.Notes),
		Avatar:      domain.DefaultAvatar,
	}
	if s.Mode == "" {
		s.Mode = b.defaultMode
	}

	b.sessions = append(b.sessions, s)
	b.persist(ctx, "schedule")

	b.open = false
	b.draft = b.emptyDraft()
	b.notify.Success(MsgScheduled)
	return s, nil
}

// CancelSession removes the session with id. A missing id is a no-op; the
// collection is written and the success toast shown either way. The result
// reports whether anything was removed.
func (b *Booking) CancelSession(ctx context.Context, id string) bool {
	before := len(b.sessions)
	b.sessions = slices.DeleteFunc(b.sessions, func(s domain.Session) bool {
		return s.ID == id
	})
	removed := len(b.sessions) < before

	b.persist(ctx, "cancel")
	b.notify.Success(MsgCancelled)
	return removed
}

// persist writes the whole collection. Failures are logged only; the
// in-memory state stands.
func (b *Booking) persist(ctx context.Context, op string) {
	if err := b.store.PutSessions(ctx, b.userID, slices.Clone(b.sessions)); err != nil {
		b.log.Warn("persisting sessions", "op", op, "count", len(b.sessions), "error", err)
	}
}

func (b *Booking) nextID() string {
	base := strconv.FormatInt(b.now().UnixMilli(), 10)
	id := base
	for n := 1; b.contains(id); n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}

func (b *Booking) contains(id string) bool {
	return slices.ContainsFunc(b.sessions, func(s domain.Session) bool { return s.ID == id })
}

// SessionsOnDate yields the sessions whose date string equals date's
// calendar day. The sequence reads the live collection on every iteration.
func (b *Booking) SessionsOnDate(date time.Time) iter.Seq[domain.Session] {
	key := date.Format(domain.DateLayout)
	return func(yield func(domain.Session) bool) {
		for _, s := range b.sessions {
			if s.Date != key {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
