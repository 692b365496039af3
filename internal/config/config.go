// Package config loads skillswap settings from an optional TOML file and
// SKILLSWAP_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/progression"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	User        string            `toml:"user"`
	Log         LogConfig         `toml:"log"`
	DB          DBConfig          `toml:"db"`
	Store       StoreConfig       `toml:"store"`
	HTTP        HTTPConfig        `toml:"http"`
	Progression progression.Rules `toml:"progression"`
	Booking     BookingConfig     `toml:"booking"`
	Mentor      MentorConfig      `toml:"mentor"`
	Cache       CacheConfig       `toml:"cache"`
}

type LogConfig struct {
	Mode   string `toml:"mode"`
	Redact bool   `toml:"redact"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// StoreConfig picks where session collections live. Everything else is
// always in SQLite.
type StoreConfig struct {
	Backend     string `toml:"backend"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

type HTTPConfig struct {
	Addr        string   `toml:"addr"`
	JWTSecret   string   `toml:"jwt_secret"`
	CORSOrigins []string `toml:"cors_origins"`
}

type BookingConfig struct {
	DefaultDurationMin int                 `toml:"default_duration_min"`
	DefaultMode        domain.DeliveryMode `toml:"default_mode"`
	InlineLimit        int                 `toml:"inline_limit"`
}

type MentorConfig struct {
	FallbackDelayMs int `toml:"fallback_delay_ms"`
}

func (m MentorConfig) FallbackDelay() time.Duration {
	return time.Duration(m.FallbackDelayMs) * time.Millisecond
}

type CacheConfig struct {
	CatalogSize int `toml:"catalog_size"`
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		User: "local",
		Log:  LogConfig{Mode: "quiet"},
		DB:   DBConfig{Path: defaultDBPath()},
		Store: StoreConfig{
			Backend:     BackendSQLite,
			RedisPrefix: "skillswap:",
		},
		HTTP: HTTPConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Progression: progression.DefaultRules(),
		Booking: BookingConfig{
			DefaultDurationMin: 60,
			DefaultMode:        domain.ModeVideo,
			InlineLimit:        2,
		},
		Cache: CacheConfig{CatalogSize: 128},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".skillswap", "skillswap.db")
	}
	return filepath.Join(home, ".skillswap", "skillswap.db")
}

// DefaultPath is SKILLSWAP_CONFIG or ~/.skillswap/config.toml.
func DefaultPath() string {
	if v := os.Getenv("SKILLSWAP_CONFIG"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skillswap", "config.toml")
}

// Load reads path over the defaults, then applies env overrides. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("opening config: %w", err)
		default:
			defer file.Close()
			if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
				return cfg, fmt.Errorf("decoding config %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store backend redis requires redis_addr")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Booking.DefaultMode != "" && !c.Booking.DefaultMode.Valid() {
		return fmt.Errorf("booking default_mode %q is not video or in-person", c.Booking.DefaultMode)
	}
	if c.Progression.PointsPerAchievement <= 0 || c.Progression.PointsPerLevel <= 0 {
		return fmt.Errorf("progression points must be positive")
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.User, "SKILLSWAP_USER")
	setString(&cfg.Log.Mode, "SKILLSWAP_LOG_MODE")
	setBool(&cfg.Log.Redact, "SKILLSWAP_LOG_REDACT")
	setString(&cfg.DB.Path, "SKILLSWAP_DB")
	setString(&cfg.Store.Backend, "SKILLSWAP_STORE")
	setString(&cfg.Store.RedisAddr, "SKILLSWAP_REDIS_ADDR")
	setString(&cfg.Store.RedisPrefix, "SKILLSWAP_REDIS_PREFIX")
	setString(&cfg.HTTP.Addr, "SKILLSWAP_HTTP_ADDR")
	setString(&cfg.HTTP.JWTSecret, "SKILLSWAP_JWT_SECRET")
	if v := os.Getenv("SKILLSWAP_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.HTTP.CORSOrigins = origins
	}
	setPositiveInt(&cfg.Progression.PointsPerAchievement, "SKILLSWAP_POINTS_PER_ACHIEVEMENT")
	setPositiveInt(&cfg.Progression.PointsPerLevel, "SKILLSWAP_POINTS_PER_LEVEL")
	setPositiveInt(&cfg.Booking.DefaultDurationMin, "SKILLSWAP_DEFAULT_DURATION_MIN")
	if v := os.Getenv("SKILLSWAP_DEFAULT_MODE"); v != "" {
		cfg.Booking.DefaultMode = domain.DeliveryMode(v)
	}
	setPositiveInt(&cfg.Booking.InlineLimit, "SKILLSWAP_INLINE_LIMIT")
	if v := os.Getenv("SKILLSWAP_MENTOR_FALLBACK_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Mentor.FallbackDelayMs = n
		}
	}
	setPositiveInt(&cfg.Cache.CatalogSize, "SKILLSWAP_CATALOG_CACHE_SIZE")
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, env string) {
	if v := os.Getenv(env); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setPositiveInt(dst *int, env string) {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
