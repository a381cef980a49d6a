package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/model"
	"github.com/univault/univault-api/utils/cache"
)

const (
	institutionListCacheKey = "univault:institutions"
	institutionCacheTTL     = 5 * time.Minute
)

// InstitutionService serves the read-only institution catalogue. A Redis
// cache is optional; when absent every read hits the store directly.
type InstitutionService struct {
	store database.InstitutionStore
	cache *cache.RedisCache
}

// NewInstitutionService creates an institution service. cache may be nil.
func NewInstitutionService(store database.InstitutionStore, cache *cache.RedisCache) *InstitutionService {
	return &InstitutionService{store: store, cache: cache}
}

// List returns all institutions, from cache when possible.
func (s *InstitutionService) List(ctx context.Context) ([]model.Institution, error) {
	if s.cache != nil {
		var cached []model.Institution
		if err := s.cache.GetJSON(ctx, institutionListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	insts, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, institutionListCacheKey, insts, institutionCacheTTL); err != nil {
			log.Printf("Failed to cache institution list: %v", err)
		}
	}
	return insts, nil
}

// Get returns a single institution by id.
func (s *InstitutionService) Get(ctx context.Context, id string) (model.Institution, error) {
	inst, err := s.store.Get(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return model.Institution{}, ErrNotFound("institution not found")
	}
	return inst, err
}

// InvalidateCache drops the cached institution list. Called after the
// aggregates refresher rewrites the catalogue.
func (s *InstitutionService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, institutionListCacheKey); err != nil {
		log.Printf("Failed to invalidate institution cache: %v", err)
	}
}
