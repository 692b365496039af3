package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/mentor"
	"github.com/alexanderramin/skillswap/internal/progression"
	"github.com/alexanderramin/skillswap/internal/repository"
	"github.com/alexanderramin/skillswap/internal/service"
	"github.com/alexanderramin/skillswap/internal/testutil"
)

const testSecret = "test-secret"

type testAPI struct {
	t        *testing.T
	engine   *gin.Engine
	teachers service.TeacherService
	store    *testutil.MemorySessionStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	teacherRepo := repository.NewSQLiteTeacherRepo(database)
	skills := repository.NewSQLiteSkillListRepo(database)
	store := testutil.NewMemorySessionStore()

	profiles := service.NewProfileService(repository.NewSQLiteProfileRepo(database), skills, teacherRepo, uow)
	transcripts, err := mentor.NewTranscripts(16)
	require.NoError(t, err)
	teachers := service.NewTeacherService(teacherRepo, uow)

	engine := NewRouter(NewRouterConfig(Deps{
		JWTSecret:   testSecret,
		CORSOrigins: []string{"http://localhost:5173"},
		Bookings: service.NewBookingService(store, service.BookingDefaults{
			DurationMin: booking.DefaultDurationMin,
			Mode:        booking.DefaultMode,
			InlineLimit: booking.DefaultInlineLimit,
		}, nil),
		Achievements: service.NewAchievementService(repository.NewSQLiteAchievementRepo(database), store, skills, uow, progression.DefaultRules(), nil),
		Teachers:     teachers,
		Profiles:     profiles,
		Mentor:       mentor.NewService(nil, profiles),
		Transcripts:  transcripts,
	}))
	return &testAPI{t: t, engine: engine, teachers: teachers, store: store}
}

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func (a *testAPI) do(method, path, user string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+signToken(a.t, testSecret, user))
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func validDraft() map[string]any {
	return map[string]any{
		"skill":       "React Development",
		"counterpart": "Sarah Chen",
		"date":        "2030-03-04",
		"time":        "14:00",
	}
}

func TestHealthcheck_NoAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAuth(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  int
	}{
		{"missing token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"wrong secret", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, "other", "u1"))
		}, http.StatusUnauthorized},
		{"no subject", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, ""))
		}, http.StatusUnauthorized},
		{"bearer header", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1"))
		}, http.StatusOK},
		{"query token", func(r *http.Request) {
			q := r.URL.Query()
			q.Set("token", signToken(t, testSecret, "u1"))
			r.URL.RawQuery = q.Encode()
		}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			api.engine.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				env := decode[response.ErrorEnvelope](t, rec)
				assert.Equal(t, "unauthorized", env.Error.Code)
			}
		})
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	api.engine.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSessions_ScheduleListCancel(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/sessions", "u1", validDraft())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[service.ScheduleResult](t, rec)
	require.NotNil(t, created.Session)
	assert.Equal(t, "pending", string(created.Session.Status))
	assert.Equal(t, booking.DefaultDurationMin, created.Session.DurationMin)
	require.Len(t, created.Notices, 1)
	assert.Equal(t, booking.MsgScheduled, created.Notices[0].Message)

	rec = api.do(http.MethodGet, "/api/sessions", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[service.SessionList](t, rec)
	require.Len(t, list.Sessions, 1)

	// Sessions belong to the token subject.
	rec = api.do(http.MethodGet, "/api/sessions", "u2", nil)
	assert.Empty(t, decode[service.SessionList](t, rec).Sessions)

	rec = api.do(http.MethodDelete, "/api/sessions/"+created.Session.ID, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[service.CancelResult](t, rec).Removed)

	rec = api.do(http.MethodDelete, "/api/sessions/"+created.Session.ID, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decode[service.CancelResult](t, rec)
	assert.False(t, cancelled.Removed)
	require.Len(t, cancelled.Notices, 1)
	assert.Equal(t, booking.MsgCancelled, cancelled.Notices[0].Message)
}

func TestSessions_UnreadableStoreRejectsWrites(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodPost, "/api/sessions", "u1", validDraft())
	require.Equal(t, http.StatusCreated, rec.Code)

	api.store.FailNextReads(errors.New("redis: connection refused"))
	rec = api.do(http.MethodDelete, "/api/sessions/unknown", "u1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decode[response.ErrorEnvelope](t, rec).Error.Code)

	api.store.FailNextReads(errors.New("redis: connection refused"))
	rec = api.do(http.MethodPost, "/api/sessions", "u1", validDraft())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = api.do(http.MethodGet, "/api/sessions", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[service.SessionList](t, rec).Sessions, 1)
}

func TestSessions_ValidationError(t *testing.T) {
	api := newTestAPI(t)

	draft := validDraft()
	delete(draft, "counterpart")
	rec := api.do(http.MethodPost, "/api/sessions", "u1", draft)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[response.ErrorEnvelope](t, rec)
	assert.Equal(t, "validation_failed", env.Error.Code)
	assert.Contains(t, env.Error.Message, "counterpart")

	rec = api.do(http.MethodPost, "/api/sessions", "u1", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decode[response.ErrorEnvelope](t, rec).Error.Code)
}

func TestSessions_CalendarAndOnDate(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusCreated, api.do(http.MethodPost, "/api/sessions", "u1", validDraft()).Code)

	rec := api.do(http.MethodGet, "/api/sessions/calendar?month=2030-03", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cal := decode[service.CalendarView](t, rec)
	// March 2030 starts on a Friday: 5 blanks + 31 days needs six rows.
	require.Len(t, cal.Cells, 42)
	assert.Nil(t, cal.Cells[0])
	require.NotNil(t, cal.Cells[8])
	assert.Equal(t, 4, cal.Cells[8].Day)
	assert.Len(t, cal.Cells[8].Sessions, 1)

	rec = api.do(http.MethodGet, "/api/sessions/calendar?month=03-2030", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/sessions/on/2030-03-04", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[service.SessionList](t, rec).Sessions, 1)

	rec = api.do(http.MethodGet, "/api/sessions/on/2030-03-05", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[service.SessionList](t, rec).Sessions)

	rec = api.do(http.MethodGet, "/api/sessions/on/yesterday", "u1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAchievements_AwardAndOverview(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/achievements/first-session/award", "u1", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodPost, "/api/achievements/first-session/award", "u1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_earned", decode[response.ErrorEnvelope](t, rec).Error.Code)

	rec = api.do(http.MethodPost, "/api/achievements/nope/award", "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/api/achievements", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ov := decode[service.AchievementOverview](t, rec)
	assert.Equal(t, 1, ov.Summary.Earned)
	assert.Equal(t, 200, ov.Summary.TotalPoints)

	rec = api.do(http.MethodGet, "/api/achievements/catalog", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	catalog := decode[map[string][]map[string]any](t, rec)
	assert.Len(t, catalog["achievements"], 8)
}

func TestTeachers_SearchAndBecome(t *testing.T) {
	api := newTestAPI(t)
	_, err := api.teachers.EnsureSeeded(context.Background())
	require.NoError(t, err)

	rec := api.do(http.MethodGet, "/api/teachers?skill=figma", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[map[string][]map[string]any](t, rec)["teachers"]
	require.Len(t, found, 1)
	assert.Equal(t, "Emily Johnson", found[0]["name"])

	rec = api.do(http.MethodPost, "/api/teachers", "u1", map[string]any{
		"name":        "Dana",
		"skills":      []string{"Go"},
		"hourly_rate": 40,
		"bio":         "Backend engineer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	teacher := decode[map[string]any](t, rec)
	assert.Equal(t, "Dana", teacher["name"])
	assert.Equal(t, "u1", teacher["user_id"])

	rec = api.do(http.MethodPost, "/api/teachers", "u2", map[string]any{"name": "Eve"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfile_UpdateAndSkills(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPut, "/api/profile", "u1", map[string]any{
		"user_id":      "someone-else",
		"display_name": "  Dana ",
		"bio":          "Learning Go",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/profile", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	type profileBody struct {
		Profile domain.Profile `json:"profile"`
	}
	got := decode[profileBody](t, rec)
	assert.Equal(t, "u1", got.Profile.UserID)
	assert.Equal(t, "Dana", got.Profile.DisplayName)

	rec = api.do(http.MethodPost, "/api/profile/skills", "u1", map[string]string{"kind": "learn", "name": "Spanish"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/api/profile/skills", "u1", map[string]string{"kind": "learn", "name": "spanish"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(http.MethodPost, "/api/profile/skills", "u1", map[string]string{"kind": "teachers", "name": "Go"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodDelete, "/api/profile/skills/learn/Spanish", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodDelete, "/api/profile/skills/learn/Spanish", "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_SendAndTranscript(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/chat", "u1", map[string]string{"message": "How do I schedule a session?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reply := decode[map[string]any](t, rec)
	assert.Equal(t, mentor.SourceLocal, reply["source"])
	assert.NotEmpty(t, reply["response"])
	assert.NotEmpty(t, reply["timestamp"])

	rec = api.do(http.MethodPost, "/api/chat", "u1", map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(http.MethodGet, "/api/chat", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	transcript := decode[struct {
		Messages    []map[string]any `json:"messages"`
		Suggestions []string         `json:"suggestions"`
	}](t, rec)
	// Greeting, question, answer. The rejected blank prompt is not recorded.
	require.Len(t, transcript.Messages, 3)
	assert.Equal(t, mentor.Greeting, transcript.Messages[0]["content"])
	assert.Equal(t, "user", transcript.Messages[1]["role"])
	assert.Equal(t, mentor.SuggestedQuestions, transcript.Suggestions)
}
