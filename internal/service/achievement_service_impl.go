package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/skillswap/internal/booking"
	"github.com/alexanderramin/skillswap/internal/db"
	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/logger"
	"github.com/alexanderramin/skillswap/internal/progression"
	"github.com/alexanderramin/skillswap/internal/repository"
)

// DefaultRating is shown until reviews exist.
const DefaultRating = 4.5

type achievementService struct {
	achievements repository.AchievementRepo
	sessions     booking.Store
	skills       repository.SkillListRepo
	uow          db.UnitOfWork
	rules        progression.Rules
	log          *logger.Logger
	now          func() time.Time
	observer     UseCaseObserver
}

func NewAchievementService(
	achievements repository.AchievementRepo,
	sessions booking.Store,
	skills repository.SkillListRepo,
	uow db.UnitOfWork,
	rules progression.Rules,
	log *logger.Logger,
	observers ...UseCaseObserver,
) AchievementService {
	if log == nil {
		log = logger.Nop()
	}
	return &achievementService{
		achievements: achievements,
		sessions:     sessions,
		skills:       skills,
		uow:          uow,
		rules:        rules,
		log:          log.With("component", "achievements"),
		now:          time.Now,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *achievementService) Catalog(ctx context.Context) ([]*domain.Achievement, error) {
	return s.achievements.ListCatalog(ctx)
}

// Overview loads its inputs concurrently. Any input that fails to load is
// treated as empty so the page still renders.
func (s *achievementService) Overview(ctx context.Context, userID string) (*AchievementOverview, error) {
	var (
		catalog  []*domain.Achievement
		earned   []domain.EarnedAchievement
		sessions []domain.Session
		teach    []string
		learn    []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		catalog, err = s.achievements.ListCatalog(gctx)
		return s.degrade(gctx, "catalog", userID, err)
	})
	g.Go(func() (err error) {
		earned, err = s.achievements.ListEarned(gctx, userID)
		return s.degrade(gctx, "earned", userID, err)
	})
	g.Go(func() (err error) {
		sessions, err = s.sessions.GetSessions(gctx, userID)
		return s.degrade(gctx, "sessions", userID, err)
	})
	g.Go(func() (err error) {
		teach, err = s.skills.Get(gctx, userID, domain.SkillTeach)
		return s.degrade(gctx, "teach skills", userID, err)
	})
	g.Go(func() (err error) {
		learn, err = s.skills.Get(gctx, userID, domain.SkillLearn)
		return s.degrade(gctx, "learn skills", userID, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := s.rules.Compute(len(earned))
	overview := &AchievementOverview{
		Summary: ProgressSummary{
			TotalPoints:        summary.TotalPoints,
			Level:              summary.Level,
			CurrentLevelPoints: summary.CurrentLevelPoints,
			NextLevelPoints:    summary.NextLevelPoints,
			ProgressPct:        summary.ProgressPct,
			Earned:             len(earned),
		},
		Stats: UserStats{
			SessionsBooked: len(sessions),
			SkillsTaught:   len(teach),
			SkillsLearned:  len(learn),
			Rating:         DefaultRating,
		},
		Achievements: make([]AchievementView, 0, len(catalog)),
	}

	earnedAt := make(map[string]time.Time, len(earned))
	for _, e := range earned {
		earnedAt[e.AchievementID] = e.EarnedAt
	}
	points := s.rules.Compute(1).TotalPoints
	for _, a := range catalog {
		view := AchievementView{
			Achievement: *a,
			Points:      points,
			Rarity:      domain.RarityOf(a.Type),
		}
		view.Icon = domain.CoalesceStr(a.Icon, domain.AchievementIcon(a.Type))
		if at, ok := earnedAt[a.ID]; ok {
			view.Earned = true
			view.EarnedAt = &at
		}
		overview.Achievements = append(overview.Achievements, view)
	}
	return overview, nil
}

// degrade logs a load failure and swallows it unless the request itself
// was cancelled.
func (s *achievementService) degrade(ctx context.Context, what, userID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return err
	}
	s.log.Warn("loading "+what, "user_id", userID, "error", err)
	return nil
}

func (s *achievementService) Award(ctx context.Context, userID, achievementID string) (earned *domain.EarnedAchievement, err error) {
	startedAt := timeNow()
	fields := map[string]any{"achievement": achievementID}
	defer func() { observe(ctx, s.observer, "award-achievement", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAchievements := repository.NewSQLiteAchievementRepo(tx)

		if _, err := txAchievements.GetByID(ctx, achievementID); err != nil {
			return err
		}
		e, err := txAchievements.Award(ctx, userID, achievementID, s.now())
		if err != nil {
			return err
		}
		earned = e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("award %s: %w", achievementID, err)
	}
	return earned, nil
}
