package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/logger"
	"github.com/kadamczak/GameBackend_Go/internal/repository"
)

// Default cache sizing. The catalog is small and immutable; the TTL only
// matters after out-of-band catalog management changes a row.
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 15 * time.Minute
)

// Service supplies immutable item metadata referenced by listings and
// merchant offers. Lookups are served from an expirable LRU in front of the
// item repository.
type Service interface {
	GetItem(ctx context.Context, itemID int) (*domain.Item, error)
	DisplayName(item *domain.Item) string
	CacheLen() int
}

type service struct {
	repo  repository.Item
	cache *itemCache
	title cases.Caser
}

// NewService creates a new catalog service with default cache sizing
func NewService(repo repository.Item) Service {
	return NewServiceWithCache(repo, DefaultCacheSize, DefaultCacheTTL)
}

// NewServiceWithCache creates a new catalog service with explicit cache sizing
func NewServiceWithCache(repo repository.Item, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newItemCache(cacheSize, cacheTTL),
		title: cases.Title(language.English),
	}
}

// GetItem resolves item metadata, serving repeat lookups from the cache
func (s *service) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", itemID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %d: %w", itemID, domain.ErrItemNotFound)
	}

	s.cache.Set(item)
	logger.FromContext(ctx).Debug("Item cached", "item_id", itemID, "cache_len", s.cache.Len())
	return item, nil
}

// DisplayName returns the user-facing casing of an item name
func (s *service) DisplayName(item *domain.Item) string {
	return s.title.String(item.Name)
}

// CacheLen reports the current cache population (admin/diagnostics)
func (s *service) CacheLen() int {
	return s.cache.Len()
}
