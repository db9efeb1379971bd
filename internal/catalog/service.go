package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "catalog:v1:clothes:"

// Service lists the catalog, caching listings in Redis when a client is
// configured. Cache failures never fail a request.
type Service struct {
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewService builds a catalog service. cache may be nil.
func NewService(repo Repository, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns garments matching filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Garment, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	key := cacheKey(filter)
	if items, ok := s.fromCache(ctx, key); ok {
		return items, nil
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, items)
	return items, nil
}

// Create validates and stores a garment, then drops cached listings.
func (s *Service) Create(ctx context.Context, g Garment) (Garment, error) {
	if err := g.Validate(); err != nil {
		return Garment{}, err
	}
	created, err := s.repo.Create(ctx, g)
	if err != nil {
		return Garment{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

func cacheKey(f Filter) string {
	return fmt.Sprintf("%s%s:%s", cachePrefix, f.Color, f.Size)
}

func (s *Service) fromCache(ctx context.Context, key string) ([]Garment, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("catalog cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	var items []Garment
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("catalog cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return items, true
}

func (s *Service) toCache(ctx context.Context, key string, items []Garment) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, cachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("catalog cache scan failed", slog.Any("error", err))
		return
	}
	if len(keys) > 0 {
		if err := s.cache.Del(ctx, keys...).Err(); err != nil {
			s.logger.Warn("catalog cache invalidation failed", slog.Any("error", err))
		}
	}
}
