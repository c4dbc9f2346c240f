package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// searchLimit caps how many destinations a single search returns.
const searchLimit = 10

// SearchCacher is the cache interface DestinationService depends on.
// Implemented by cache.SearchCache. Get returns nil, nil on a miss.
type SearchCacher interface {
	Get(ctx context.Context, query string) ([]domain.Destination, error)
	Set(ctx context.Context, query string, dests []domain.Destination) error
}

// DestinationService serves the curated destination catalog with a
// cache-aside layer in front of Postgres. Cache failures are logged and
// absorbed — the database always remains the source of truth.
type DestinationService struct {
	dests repo.DestinationRepo
	cache SearchCacher
	log   *slog.Logger
}

// NewDestinationService constructs a DestinationService.
// Pass a nil cache to run without caching (used in some tests).
func NewDestinationService(dests repo.DestinationRepo, cache SearchCacher, log *slog.Logger) *DestinationService {
	return &DestinationService{dests: dests, cache: cache, log: log}
}

// Search returns destinations whose name starts with the query.
// Queries shorter than 2 characters return an empty result without touching
// storage. Always returns a non-nil slice.
func (s *DestinationService) Search(ctx context.Context, query string) ([]domain.Destination, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []domain.Destination{}, nil
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, query)
		if err != nil {
			s.log.Warn("destination cache get failed", "query", query, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	dests, err := s.dests.SearchByName(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("service.DestinationService.Search: %w", err)
	}
	if dests == nil {
		dests = []domain.Destination{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, dests); err != nil {
			s.log.Warn("destination cache set failed", "query", query, "error", err)
		}
	}

	return dests, nil
}

// Seed populates the catalog with the built-in destination list.
// It is a no-op when the catalog already has entries, so it is safe to run
// on every startup.
func (s *DestinationService) Seed(ctx context.Context) error {
	n, err := s.dests.Count(ctx)
	if err != nil {
		return fmt.Errorf("service.DestinationService.Seed: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, dest := range seedDestinations {
		if err := s.dests.Insert(ctx, dest); err != nil {
			return fmt.Errorf("service.DestinationService.Seed: %q: %w", dest.Name, err)
		}
	}
	s.log.Info("destination catalog seeded", "count", len(seedDestinations))
	return nil
}
