// Package service contains the business logic for the TripWeaver API.
// Services validate inputs, enforce ownership, and orchestrate repo, planner,
// and queue calls. No SQL and no HTTP live here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/planner"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// Enqueuer submits a trip for asynchronous itinerary generation.
// Implemented by worker.Pool.
type Enqueuer interface {
	Enqueue(tripID uuid.UUID) error
}

// ItineraryService drives itinerary generation and serves itinerary reads.
//
// Generate is invoked by the worker pool, never directly by a request
// handler; Regenerate and ListByTrip are the user-facing entry points and
// carry the ownership check.
type ItineraryService struct {
	trips    repo.TripRepo
	days     repo.ItineraryRepo
	provider planner.Provider
	queue    Enqueuer
	log      *slog.Logger
}

// NewItineraryService constructs an ItineraryService with its dependencies.
// The provider is injected so tests can substitute a deterministic stub.
func NewItineraryService(trips repo.TripRepo, days repo.ItineraryRepo, provider planner.Provider, queue Enqueuer, log *slog.Logger) *ItineraryService {
	return &ItineraryService{trips: trips, days: days, provider: provider, queue: queue, log: log}
}

// Generate runs one full generation attempt for the trip: fetch, prompt,
// model call, parse, persist. Every failure is terminal for this attempt —
// nothing here retries; a fresh user-initiated Regenerate is the only retry
// path.
//
// Days are persisted independently. If a later insert fails, earlier days
// stay in place; the trip is then partially populated until the user
// regenerates (which clears all days first).
func (s *ItineraryService) Generate(ctx context.Context, tripID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	prompt := planner.BuildPrompt(trip)

	content, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Generate: provider: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("service.ItineraryService.Generate: %w", domain.ErrEmptyResponse)
	}

	parsed, err := planner.ParseItinerary(content)
	if err != nil {
		// Raw output goes to the diagnostic log only, never to the end user.
		// Warn so it survives the default log level.
		s.log.Warn("unparseable model output", "trip_id", tripID, "output", content)
		return fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	for _, day := range parsed {
		_, err := s.days.Create(ctx, domain.ItineraryDay{
			TripID:     tripID,
			Day:        day.Index,
			Theme:      day.Theme,
			Activities: day.Activities,
		})
		if err != nil {
			return fmt.Errorf("service.ItineraryService.Generate: persist day %d: %w", day.Index, err)
		}
	}

	return nil
}

// Regenerate discards the trip's existing itinerary and queues a fresh
// generation. Between the delete and the worker finishing, the trip is
// observably itinerary-less.
//
// Two concurrent regenerations of the same trip are not serialized; their
// deletes and inserts may interleave. The unique (trip_id, day) index keeps
// day indices distinct, but a mixed itinerary is possible. Accepted gap.
func (s *ItineraryService) Regenerate(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Regenerate: %w", err)
	}
	if trip.UserID != userID {
		return fmt.Errorf("service.ItineraryService.Regenerate: %w", domain.ErrAccessDenied)
	}

	deleted, err := s.days.DeleteByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Regenerate: %w", err)
	}
	s.log.Info("itinerary cleared for regeneration", "trip_id", tripID, "deleted_days", deleted)

	if err := s.queue.Enqueue(tripID); err != nil {
		return fmt.Errorf("service.ItineraryService.Regenerate: %w", err)
	}
	return nil
}

// ListByTrip returns the trip's generated days ordered by day index.
// An empty result means the itinerary is still generating or generation
// failed — the data alone cannot distinguish the two.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListByTrip: %w", err)
	}
	if trip.UserID != userID {
		return nil, fmt.Errorf("service.ItineraryService.ListByTrip: %w", domain.ErrAccessDenied)
	}

	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListByTrip: %w", err)
	}
	if days == nil {
		return []domain.ItineraryDay{}, nil
	}
	return days, nil
}
