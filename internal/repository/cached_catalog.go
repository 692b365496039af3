package repository

import (
	"context"

	"github.com/alexanderramin/skillswap/internal/domain"
	lru "github.com/hashicorp/golang-lru"
)

// Whole-catalog and per-achievement entries share one LRU, so their keys
// live in separate prefixes.
const catalogKey = "list:catalog"

func achievementKey(id string) string { return "id:" + id }

// CachedAchievementRepo memoizes catalog reads. Catalog entries are
// immutable once published, so only CreateCatalogEntry invalidates.
// Earned records always go to the underlying repo.
type CachedAchievementRepo struct {
	AchievementRepo
	cache *lru.Cache
}

func NewCachedAchievementRepo(inner AchievementRepo, size int) (*CachedAchievementRepo, error) {
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedAchievementRepo{AchievementRepo: inner, cache: cache}, nil
}

func (c *CachedAchievementRepo) ListCatalog(ctx context.Context) ([]*domain.Achievement, error) {
	if v, ok := c.cache.Get(catalogKey); ok {
		if catalog, ok := v.([]*domain.Achievement); ok {
			return catalog, nil
		}
	}
	catalog, err := c.AchievementRepo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Add(catalogKey, catalog)
	for _, a := range catalog {
		c.cache.Add(achievementKey(a.ID), a)
	}
	return catalog, nil
}

func (c *CachedAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	if v, ok := c.cache.Get(achievementKey(id)); ok {
		if a, ok := v.(*domain.Achievement); ok {
			return a, nil
		}
	}
	a, err := c.AchievementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Add(achievementKey(id), a)
	return a, nil
}

func (c *CachedAchievementRepo) CreateCatalogEntry(ctx context.Context, a *domain.Achievement) error {
	if err := c.AchievementRepo.CreateCatalogEntry(ctx, a); err != nil {
		return err
	}
	c.cache.Remove(catalogKey)
	return nil
}
