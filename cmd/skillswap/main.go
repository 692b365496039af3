package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/cli"
	"github.com/alexanderramin/skillswap/internal/config"
	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/llm"
	"github.com/alexanderramin/skillswap/internal/logger"
	"github.com/alexanderramin/skillswap/internal/mentor"
	"github.com/alexanderramin/skillswap/internal/repository"
	"github.com/alexanderramin/skillswap/internal/service"
)

// Chat transcripts kept in memory at once.
const transcriptCacheSize = 256

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	log = log.WithRedaction(cfg.Log.Redact)
	defer log.Sync()

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	// Session collections live in SQLite unless Redis is configured.
	var store booking.Store = repository.NewSQLiteSessionStore(database)
	if cfg.Store.Backend == config.BackendRedis {
		rdb, err := repository.NewRedisClient(ctx, cfg.Store.RedisAddr)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		store = repository.NewRedisSessionStore(rdb, cfg.Store.RedisPrefix)
	}

	// Wire repositories
	achievementRepo, err := repository.NewCachedAchievementRepo(
		repository.NewSQLiteAchievementRepo(database), cfg.Cache.CatalogSize)
	if err != nil {
		return fmt.Errorf("building catalog cache: %w", err)
	}
	teacherRepo := repository.NewSQLiteTeacherRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	skillRepo := repository.NewSQLiteSkillListRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(log)

	// Wire services
	profileSvc := service.NewProfileService(profileRepo, skillRepo, teacherRepo, uow, observer)
	teacherSvc := service.NewTeacherService(teacherRepo, uow, observer)
	if n, err := teacherSvc.EnsureSeeded(ctx); err != nil {
		log.Warn("seeding teacher directory failed", "error", err)
	} else if n > 0 {
		log.Info("seeded teacher directory", "count", n)
	}

	app := &cli.App{
		Config: cfg,
		Log:    log,
		Bookings: service.NewBookingService(store, service.BookingDefaults{
			DurationMin: cfg.Booking.DefaultDurationMin,
			Mode:        cfg.Booking.DefaultMode,
			InlineLimit: cfg.Booking.InlineLimit,
		}, log, observer),
		Achievements: service.NewAchievementService(
			achievementRepo, store, skillRepo, uow, cfg.Progression, log, observer),
		Teachers: teacherSvc,
		Profiles: profileSvc,
	}

	// Detect interactive terminal for prompts and the calendar TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The mentor only calls Gemini when an API key is configured; otherwise
	// it answers from local keyword rules.
	var client llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Ready() {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(log)
		}
		client = llm.NewGeminiClient(llmCfg, llmObserver)
	}
	app.Mentor = mentor.NewService(client, profileSvc,
		mentor.WithLogger(log.With("component", "mentor")),
		mentor.WithFallbackDelay(cfg.Mentor.FallbackDelay()),
	)
	app.Transcripts, err = mentor.NewTranscripts(transcriptCacheSize)
	if err != nil {
		return fmt.Errorf("building transcript cache: %w", err)
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
