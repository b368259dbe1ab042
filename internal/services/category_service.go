package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/trivia-hub/trivia-service/internal/cache"
	"github.com/trivia-hub/trivia-service/internal/repositories"
	"github.com/trivia-hub/trivia-service/internal/utils"
)

const (
	categoryMapCacheKey = "trivia:categories:map"

	// Categories are seeded externally and read-only, so a flat TTL is
	// enough; there is nothing to invalidate from this service.
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService exposes the read operations over category records.
type CategoryService interface {
	// ListTypes returns the category type labels in store iteration order.
	ListTypes(ctx context.Context) ([]string, error)

	// ListMap returns category ids (as string keys) mapped to type labels.
	ListMap(ctx context.Context) (map[string]string, error)
}

type categoryService struct {
	repo   repositories.Repository
	cache  cache.CacheService
	logger utils.Logger
}

func NewCategoryService(repo repositories.Repository, cacheService cache.CacheService, logger utils.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

func (s *categoryService) ListTypes(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Category().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	types := make([]string, len(categories))
	for i, category := range categories {
		types[i] = category.Type
	}
	return types, nil
}

func (s *categoryService) ListMap(ctx context.Context) (map[string]string, error) {
	var cached map[string]string
	if err := s.cache.Get(ctx, categoryMapCacheKey, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.repo.Category().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	categoryMap := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryMap[strconv.FormatUint(uint64(category.ID), 10)] = category.Type
	}

	if err := s.cache.Set(ctx, categoryMapCacheKey, categoryMap, categoryCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache category map", "error", err)
	}

	return categoryMap, nil
}
