package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.User)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 200, cfg.Progression.PointsPerAchievement)
	assert.Equal(t, 500, cfg.Progression.PointsPerLevel)
	assert.Equal(t, 60, cfg.Booking.DefaultDurationMin)
	assert.Equal(t, domain.ModeVideo, cfg.Booking.DefaultMode)
	assert.Equal(t, 2, cfg.Booking.InlineLimit)
	assert.Equal(t, time.Duration(0), cfg.Mentor.FallbackDelay())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
user = "ada"

[db]
path = "/tmp/ss.db"

[progression]
points_per_achievement = 100
points_per_level = 300

[booking]
default_duration_min = 45
default_mode = "in-person"

[mentor]
fallback_delay_ms = 1000

[http]
cors_origins = ["https://skillswap.example"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ada", cfg.User)
	assert.Equal(t, "/tmp/ss.db", cfg.DB.Path)
	assert.Equal(t, 100, cfg.Progression.PointsPerAchievement)
	assert.Equal(t, 300, cfg.Progression.PointsPerLevel)
	assert.Equal(t, 45, cfg.Booking.DefaultDurationMin)
	assert.Equal(t, domain.ModeInPerson, cfg.Booking.DefaultMode)
	assert.Equal(t, 2, cfg.Booking.InlineLimit, "unset keys keep defaults")
	assert.Equal(t, time.Second, cfg.Mentor.FallbackDelay())
	assert.Equal(t, []string{"https://skillswap.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "user = \"ada\"\n")
	t.Setenv("SKILLSWAP_USER", "grace")
	t.Setenv("SKILLSWAP_POINTS_PER_LEVEL", "1000")
	t.Setenv("SKILLSWAP_POINTS_PER_ACHIEVEMENT", "-3")
	t.Setenv("SKILLSWAP_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SKILLSWAP_LOG_REDACT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "grace", cfg.User)
	assert.Equal(t, 1000, cfg.Progression.PointsPerLevel)
	assert.Equal(t, 200, cfg.Progression.PointsPerAchievement, "invalid env ignored")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.Log.Redact)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"redis without address", "[store]\nbackend = \"redis\"\n"},
		{"unknown backend", "[store]\nbackend = \"etcd\"\n"},
		{"bad mode", "[booking]\ndefault_mode = \"phone\"\n"},
		{"zero points", "[progression]\npoints_per_level = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "user = \n"))
	assert.Error(t, err)
}
