package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/logger"
)

// BookingDefaults carries the configurable draft defaults.
type BookingDefaults struct {
	DurationMin int
	Mode        domain.DeliveryMode
	InlineLimit int
}

type bookingService struct {
	store    booking.Store
	defaults BookingDefaults
	log      *logger.Logger
	now      func() time.Time
	observer UseCaseObserver

	// Serializes read-modify-write per user inside this process. Other
	// writers to the same store still race, last write wins.
	locks userLocks
}

// userLocks hands out one mutex per user and forgets it once nobody holds
// or waits on it.
type userLocks struct {
	mu    sync.Mutex
	users map[string]*userLock
}

type userLock struct {
	sync.Mutex
	refs int
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.users == nil {
		l.users = make(map[string]*userLock)
	}
	ul, ok := l.users[userID]
	if !ok {
		ul = &userLock{}
		l.users[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.Lock()
	return func() {
		ul.Unlock()
		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.users, userID)
		}
		l.mu.Unlock()
	}
}

func (l *userLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}

func NewBookingService(store booking.Store, defaults BookingDefaults, log *logger.Logger, observers ...UseCaseObserver) BookingService {
	if log == nil {
		log = logger.Nop()
	}
	return &bookingService{
		store:    store,
		defaults: defaults,
		log:      log,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// open loads the user's collection into a fresh state machine. A failed
// load leaves an empty collection behind; read-only callers show it, while
// writers must check loadErr before replacing the stored list.
func (s *bookingService) open(ctx context.Context, userID string) (b *booking.Booking, notices *booking.NoticeLog, loadErr error) {
	notices = &booking.NoticeLog{}
	b = booking.New(userID, s.store,
		booking.WithNotifier(notices),
		booking.WithLogger(s.log),
		booking.WithClock(s.now),
		booking.WithDefaults(s.defaults.DurationMin, s.defaults.Mode),
		booking.WithInlineLimit(s.defaults.InlineLimit),
	)
	if err := b.Load(ctx); err != nil {
		loadErr = fmt.Errorf("loading sessions for %s: %w: %w", userID, domain.ErrCollaboratorUnavailable, err)
	}
	return b, notices, loadErr
}

func (s *bookingService) List(ctx context.Context, userID string, upcomingOnly bool) *SessionList {
	b, notices, _ := s.open(ctx, userID)
	sessions := b.List()
	if upcomingOnly {
		sessions = b.Upcoming()
	}
	return &SessionList{Sessions: nonNil(sessions), Notices: notices.Notices}
}

func (s *bookingService) Schedule(ctx context.Context, userID string, draft domain.SessionDraft) (res *ScheduleResult, err error) {
	startedAt := timeNow()
	fields := map[string]any{"skill": draft.Skill}
	defer func() { observe(ctx, s.observer, "schedule-session", startedAt, fields, err) }()

	unlock := s.locks.lock(userID)
	defer unlock()

	b, notices, err := s.open(ctx, userID)
	if err != nil {
		return &ScheduleResult{Notices: notices.Notices}, err
	}
	session, err := b.ScheduleSession(ctx, draft)
	res = &ScheduleResult{Notices: notices.Notices}
	if err != nil {
		return res, err
	}
	fields["session_id"] = session.ID
	res.Session = &session
	return res, nil
}

func (s *bookingService) Cancel(ctx context.Context, userID, sessionID string) (res *CancelResult, err error) {
	startedAt := timeNow()
	fields := map[string]any{"session_id": sessionID}
	defer func() { observe(ctx, s.observer, "cancel-session", startedAt, fields, err) }()

	unlock := s.locks.lock(userID)
	defer unlock()

	b, notices, err := s.open(ctx, userID)
	if err != nil {
		return &CancelResult{Notices: notices.Notices}, err
	}
	removed := b.CancelSession(ctx, sessionID)
	fields["removed"] = removed
	return &CancelResult{Removed: removed, Notices: notices.Notices}, nil
}

// Calendar lays out the month containing month.
func (s *bookingService) Calendar(ctx context.Context, userID string, month time.Time) *CalendarView {
	b, notices, _ := s.open(ctx, userID)
	b.SetReference(month)
	return &CalendarView{
		Month:   time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()),
		Cells:   b.MonthGrid(),
		Notices: notices.Notices,
	}
}

func (s *bookingService) OnDate(ctx context.Context, userID string, date time.Time) *SessionList {
	b, notices, _ := s.open(ctx, userID)
	sessions := slices.Collect(b.SessionsOnDate(date))
	return &SessionList{Sessions: nonNil(sessions), Notices: notices.Notices}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
