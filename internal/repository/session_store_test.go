package repository

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ booking.Store = (*SQLiteSessionStore)(nil)
	_ booking.Store = (*RedisSessionStore)(nil)
)

func randomSessions(rng *rand.Rand) []domain.Session {
	n := rng.Intn(6)
	out := make([]domain.Session, 0, n)
	modes := []domain.DeliveryMode{domain.ModeVideo, domain.ModeInPerson}
	for i := 0; i < n; i++ {
		s := testutil.NewTestSession(
			"Skill "+strconv.Itoa(rng.Intn(100)),
			"2025-0"+strconv.Itoa(1+rng.Intn(9))+"-1"+strconv.Itoa(rng.Intn(10)),
			"1"+strconv.Itoa(rng.Intn(10))+":30",
			testutil.WithMode(modes[rng.Intn(2)]),
			testutil.WithDuration(15*(1+rng.Intn(8))),
		)
		if rng.Intn(2) == 0 {
			s.Notes = "note " + strconv.Itoa(i)
		}
		out = append(out, s)
	}
	return out
}

// roundTrip checks that whatever is put comes back unchanged.
func roundTrip(t *testing.T, store booking.Store) {
	t.Helper()
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		user := uuid.New().String()
		want := randomSessions(rng)
		require.NoError(t, store.PutSessions(ctx, user, want), "trial %d", trial)

		got, err := store.GetSessions(ctx, user)
		require.NoError(t, err, "trial %d", trial)
		if len(want) == 0 {
			assert.Empty(t, got, "trial %d", trial)
			continue
		}
		assert.Equal(t, want, got, "trial %d", trial)
	}
}

func TestSQLiteSessionStore_RoundTrip(t *testing.T) {
	roundTrip(t, NewSQLiteSessionStore(testutil.NewTestDB(t)))
}

func TestSQLiteSessionStore_UnknownUserIsEmpty(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))

	got, err := store.GetSessions(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteSessionStore_PutReplacesWholeCollection(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestSession("Guitar", "2025-06-01", "14:00")
	b := testutil.NewTestSession("Piano", "2025-06-02", "10:00")
	require.NoError(t, store.PutSessions(ctx, "u1", []domain.Session{a, b}))
	require.NoError(t, store.PutSessions(ctx, "u1", []domain.Session{b}))

	got, err := store.GetSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Session{b}, got)
}

func TestSQLiteSessionStore_UsersAreIsolated(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.PutSessions(ctx, "u1", []domain.Session{testutil.NewTestSession("Guitar", "2025-06-01", "14:00")}))
	got, err := store.GetSessions(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	roundTrip(t, testutil.NewMemorySessionStore())
}

// Runs only against a real server: SKILLSWAP_TEST_REDIS_ADDR=localhost:6379.
func TestRedisSessionStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("SKILLSWAP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SKILLSWAP_TEST_REDIS_ADDR not set")
	}
	rdb, err := NewRedisClient(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	store := NewRedisSessionStore(rdb, "skillswap-test:"+uuid.New().String()+":")
	roundTrip(t, store)

	got, err := store.GetSessions(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewRedisClient_RequiresAddress(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "")
	assert.Error(t, err)
}
