package booking

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type failingStore struct {
	getErr, putErr error
	puts           int
}

func (f *failingStore) GetSessions(context.Context, string) ([]domain.Session, error) {
	return nil, f.getErr
}

func (f *failingStore) PutSessions(context.Context, string, []domain.Session) error {
	f.puts++
	return f.putErr
}

func newBooking(t *testing.T, store Store) (*Booking, *NoticeLog) {
	t.Helper()
	notices := &NoticeLog{}
	b := New("user-1", store, WithNotifier(notices), WithClock(fixedClock))
	b.Load(context.Background())
	return b, notices
}

func guitarDraft() domain.SessionDraft {
	return domain.SessionDraft{Skill: "Guitar", Counterpart: "Alex", Date: "2025-06-01", Time: "14:00"}
}

func TestScheduleSession_AppendsPendingSessionAndClearsDraft(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	b, notices := newBooking(t, store)
	ctx := context.Background()

	s, err := b.ScheduleSession(ctx, guitarDraft())
	require.NoError(t, err)

	assert.Equal(t, domain.SessionPending, s.Status)
	assert.Equal(t, "Guitar", s.Skill)
	assert.Equal(t, "Alex", s.Counterpart)
	assert.Equal(t, 60, s.DurationMin)
	assert.Equal(t, domain.ModeVideo, s.Mode)
	assert.Equal(t, domain.DefaultAvatar, s.Avatar)
	assert.NotEmpty(t, s.ID)

	assert.Len(t, b.Sessions(), 1)
	assert.False(t, b.DialogOpen())
	assert.Equal(t, domain.SessionDraft{DurationMin: 60, Mode: domain.ModeVideo}, b.Draft())

	last, ok := notices.Last()
	require.True(t, ok)
	assert.Equal(t, Notice{Level: NoticeSuccess, Message: MsgScheduled}, last)

	stored, err := store.GetSessions(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, b.Sessions(), stored)
}

func TestScheduleSession_MissingSkillRejected(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	b, notices := newBooking(t, store)

	draft := guitarDraft()
	draft.Skill = ""
	draft.Notes = "bring a capo"

	_, err := b.ScheduleSession(context.Background(), draft)
	require.Error(t, err)

	var missing *domain.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"skill"}, missing.Fields)

	assert.Empty(t, b.Sessions())
	assert.True(t, b.DialogOpen(), "dialog stays open")
	assert.Equal(t, draft, b.Draft(), "draft retained as entered")
	assert.Equal(t, []Notice{{Level: NoticeWarning, Message: MsgMissingFields}}, notices.Notices)
	assert.Equal(t, 0, store.Puts("user-1"), "nothing written on validation failure")
}

func TestScheduleSession_InvalidFormatWarns(t *testing.T) {
	b, notices := newBooking(t, testutil.NewMemorySessionStore())

	draft := guitarDraft()
	draft.Time = "2pm"
	_, err := b.ScheduleSession(context.Background(), draft)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.True(t, b.DialogOpen())
	last, _ := notices.Last()
	assert.Equal(t, NoticeWarning, last.Level)
	assert.Contains(t, last.Message, MsgInvalidFields)
}

func TestSubmit_FixAfterValidationFailure(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	ctx := context.Background()

	draft := guitarDraft()
	draft.Counterpart = ""
	_, err := b.ScheduleSession(ctx, draft)
	require.Error(t, err)

	fixed := b.Draft()
	fixed.Counterpart = "Alex"
	require.NoError(t, b.SetDraft(fixed))
	_, err = b.Submit(ctx)
	require.NoError(t, err)
	assert.Len(t, b.Sessions(), 1)
}

func TestDialog_ClosedRejectsDraftAndSubmit(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())

	assert.ErrorIs(t, b.SetDraft(guitarDraft()), ErrDialogClosed)
	_, err := b.Submit(context.Background())
	assert.ErrorIs(t, err, ErrDialogClosed)

	b.OpenDialog()
	require.NoError(t, b.SetDraft(guitarDraft()))
	b.CancelDialog()
	assert.False(t, b.DialogOpen())
	assert.Empty(t, b.Draft().Skill)
}

func TestScheduleSession_SameMillisecondGetsUniqueIDs(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	ctx := context.Background()

	first, err := b.ScheduleSession(ctx, guitarDraft())
	require.NoError(t, err)
	second, err := b.ScheduleSession(ctx, guitarDraft())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.ID+"-1", second.ID)
}

func TestCancelSession_RemovesOnlyMatchingEntry(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	b, notices := newBooking(t, store)
	ctx := context.Background()

	a, _ := b.ScheduleSession(ctx, guitarDraft())
	keep, _ := b.ScheduleSession(ctx, guitarDraft())

	removed := b.CancelSession(ctx, a.ID)
	assert.True(t, removed)
	assert.Equal(t, []domain.Session{keep}, b.Sessions())

	last, _ := notices.Last()
	assert.Equal(t, MsgCancelled, last.Message)

	stored, _ := store.GetSessions(ctx, "user-1")
	assert.Equal(t, []domain.Session{keep}, stored)
}

func TestCancelSession_NonexistentIsIdempotent(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	b, notices := newBooking(t, store)
	ctx := context.Background()

	s, _ := b.ScheduleSession(ctx, guitarDraft())
	putsBefore := store.Puts("user-1")

	removed := b.CancelSession(ctx, "does-not-exist")
	assert.False(t, removed)
	assert.Equal(t, []domain.Session{s}, b.Sessions())
	assert.Equal(t, putsBefore+1, store.Puts("user-1"), "collection is still written")

	last, _ := notices.Last()
	assert.Equal(t, Notice{Level: NoticeSuccess, Message: MsgCancelled}, last)
}

func TestLoad_StoreFailureDegradesToEmpty(t *testing.T) {
	store := &failingStore{getErr: errors.New("disk on fire")}
	notices := &NoticeLog{}
	b := New("user-1", store, WithNotifier(notices), WithClock(fixedClock))

	err := b.Load(context.Background())
	require.ErrorIs(t, err, store.getErr)
	assert.Empty(t, b.Sessions())
	assert.Zero(t, store.puts)
	assert.Equal(t, []Notice{{Level: NoticeError, Message: MsgLoadFailed}}, notices.Notices)
}

func TestPersistFailure_NotDistinguishedFromSuccess(t *testing.T) {
	store := &failingStore{putErr: errors.New("quota exceeded")}
	b, notices := newBooking(t, store)

	s, err := b.ScheduleSession(context.Background(), guitarDraft())
	require.NoError(t, err)
	assert.Equal(t, []domain.Session{s}, b.Sessions())
	assert.Equal(t, 1, store.puts)

	last, _ := notices.Last()
	assert.Equal(t, MsgScheduled, last.Message)
}

func TestLoad_ReadsExistingCollection(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	existing := []domain.Session{
		testutil.NewTestSession("Piano", "2025-06-12", "10:00"),
		testutil.NewTestSession("Chess", "2025-06-11", "18:30"),
	}
	require.NoError(t, store.PutSessions(context.Background(), "user-1", existing))

	b, _ := newBooking(t, store)
	assert.Equal(t, existing, b.Sessions())

	list := b.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Chess", list[0].Skill)
	assert.Equal(t, "Piano", list[1].Skill)
}

func TestUpcoming_DropsPastSessions(t *testing.T) {
	store := testutil.NewMemorySessionStore()
	require.NoError(t, store.PutSessions(context.Background(), "user-1", []domain.Session{
		testutil.NewTestSession("Past", "2025-06-09", "10:00"),
		testutil.NewTestSession("Later today", "2025-06-10", "15:00"),
		testutil.NewTestSession("Next week", "2025-06-17", "09:00"),
	}))
	b, _ := newBooking(t, store)

	var skills []string
	for _, s := range b.Upcoming() {
		skills = append(skills, s.Skill)
	}
	assert.Equal(t, []string{"Later today", "Next week"}, skills)
}

func TestSessionsOnDate_RestartableAndLive(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	ctx := context.Background()
	day := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)

	_, err := b.ScheduleSession(ctx, guitarDraft())
	require.NoError(t, err)
	other := guitarDraft()
	other.Date = "2025-06-02"
	_, err = b.ScheduleSession(ctx, other)
	require.NoError(t, err)

	seq := b.SessionsOnDate(day)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Len(t, first, 1)
	assert.Equal(t, first, second)

	_, err = b.ScheduleSession(ctx, guitarDraft())
	require.NoError(t, err)
	assert.Len(t, slices.Collect(seq), 2, "sequence re-filters the current collection")
}

func TestSessionsOnDate_EarlyBreak(t *testing.T) {
	b, _ := newBooking(t, testutil.NewMemorySessionStore())
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := b.ScheduleSession(ctx, guitarDraft())
		require.NoError(t, err)
	}

	n := 0
	for range b.SessionsOnDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestNew_DefaultsOptions(t *testing.T) {
	b := New("u", testutil.NewMemorySessionStore(), WithDefaults(45, domain.ModeInPerson), WithClock(fixedClock))
	b.OpenDialog()
	assert.Equal(t, 45, b.Draft().DurationMin)
	assert.Equal(t, domain.ModeInPerson, b.Draft().Mode)

	// Invalid overrides are ignored.
	b = New("u", testutil.NewMemorySessionStore(), WithDefaults(-1, "fax"))
	assert.Equal(t, 60, b.Draft().DurationMin)
	assert.Equal(t, domain.ModeVideo, b.Draft().Mode)
}
