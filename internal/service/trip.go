package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// Creating a trip also enqueues its itinerary generation.
type TripService struct {
	trips repo.TripRepo
	queue Enqueuer
	log   *slog.Logger
}

// NewTripService constructs a TripService backed by the provided repo and queue.
func NewTripService(trips repo.TripRepo, queue Enqueuer, log *slog.Logger) *TripService {
	return &TripService{trips: trips, queue: queue, log: log}
}

// Create validates and persists a new trip, then enqueues itinerary
// generation. The trip is created even when the queue is full — the user can
// trigger a regenerate later, so a full queue only costs them the automatic
// first attempt.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	trip.Status = domain.StatusPlanning

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	if err := s.queue.Enqueue(created.ID); err != nil {
		s.log.Warn("could not enqueue itinerary generation", "trip_id", created.ID, "error", err)
	}

	return created, nil
}

// GetByID returns a single trip, verifying the requester owns it.
func (s *TripService) GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	if trip.UserID != userID {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrAccessDenied)
	}
	return trip, nil
}

// ListByUser returns one page of the user's trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListByUser: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// UpdateStatus moves the trip to a new lifecycle status.
// Returns domain.ErrValidation for an unknown status and domain.ErrAccessDenied
// when the requester does not own the trip.
func (s *TripService) UpdateStatus(ctx context.Context, userID, tripID uuid.UUID, status domain.TripStatus) (domain.Trip, error) {
	if !domain.ValidStatus(status) {
		return domain.Trip{}, fmt.Errorf("%w: status must be one of planning, confirmed, completed", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStatus: %w", err)
	}
	if trip.UserID != userID {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStatus: %w", domain.ErrAccessDenied)
	}

	updated, err := s.trips.UpdateStatus(ctx, tripID, status)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStatus: %w", err)
	}
	return updated, nil
}

// Delete removes the trip and, via the database cascade, its itinerary days.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if trip.UserID != userID {
		return fmt.Errorf("service.TripService.Delete: %w", domain.ErrAccessDenied)
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules for trip creation.
//   - Title and destination must be non-empty (whitespace-only rejected).
//   - End date must not be before start date.
//   - Travelers must be at least 1; budget, when given, must be positive.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	if trip.Budget != nil && *trip.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", domain.ErrValidation)
	}
	return nil
}
