package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

const (
	lookupsCacheKey = "lookups:all"
	venuesCacheKey  = "lookups:venues"
)

type lookupRepository interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Venues(ctx context.Context) ([]models.Venue, error)
	Sectors(ctx context.Context) ([]models.Sector, error)
	Sites(ctx context.Context) ([]models.Site, error)
	DatabaseName(ctx context.Context) (string, error)
}

// LookupService serves the reference lists behind an optional cache.
type LookupService struct {
	repo   lookupRepository
	cache  *CacheService
	ttl    time.Duration
	logger *zap.Logger
}

// NewLookupService constructs a LookupService. cache may be nil.
func NewLookupService(repo lookupRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *LookupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LookupService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Lookups returns areas, sectors and sites.
func (s *LookupService) Lookups(ctx context.Context) (*models.Lookups, error) {
	out, err := cachedLoad(ctx, s.cache, lookupsCacheKey, s.ttl, s.loadLookups)
	if err != nil {
		s.logger.Error("load lookups failed", zap.Error(err))
		return nil, passThrough(err, "Failed to load lookups.")
	}
	return &out, nil
}

func (s *LookupService) loadLookups(ctx context.Context) (models.Lookups, error) {
	var out models.Lookups
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Areas, err = s.repo.Areas(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Sectors, err = s.repo.Sectors(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Sites, err = s.repo.Sites(gctx)
		return err
	})
	return out, g.Wait()
}

// Venues returns the known venues.
func (s *LookupService) Venues(ctx context.Context) ([]models.Venue, error) {
	venues, err := cachedLoad(ctx, s.cache, venuesCacheKey, s.ttl, s.repo.Venues)
	if err != nil {
		s.logger.Error("load venues failed", zap.Error(err))
		return nil, passThrough(err, "Failed to load venues.")
	}
	return venues, nil
}

// Invalidate drops every cached lookup list.
func (s *LookupService) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, "lookups:*")
}

// Health performs a database round trip and returns the database name.
func (s *LookupService) Health(ctx context.Context) (string, error) {
	name, err := s.repo.DatabaseName(ctx)
	if err != nil {
		s.logger.Warn("database health check failed", zap.Error(err))
		return "", passThrough(err, "Database unavailable.")
	}
	return name, nil
}
