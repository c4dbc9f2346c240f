// Package handler implements the HTTP handlers for the TripWeaver API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, itinerary.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Trip, int64, error)
	UpdateStatus(ctx context.Context, userID, tripID uuid.UUID, status domain.TripStatus) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
}

// ItineraryServicer defines the itinerary operations the handlers depend on.
type ItineraryServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.ItineraryDay, error)
	Regenerate(ctx context.Context, userID, tripID uuid.UUID) error
}

// DestinationSearcher defines the destination catalog operations the handlers depend on.
type DestinationSearcher interface {
	Search(ctx context.Context, query string) ([]domain.Destination, error)
}

// Exporter defines the itinerary export operation the handlers depend on.
type Exporter interface {
	Calendar(ctx context.Context, userID, tripID uuid.UUID) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips        TripServicer
	itineraries  ItineraryServicer
	destinations DestinationSearcher
	exports      Exporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, itineraries ItineraryServicer, destinations DestinationSearcher, exports Exporter) *Server {
	return &Server{
		trips:        trips,
		itineraries:  itineraries,
		destinations: destinations,
		exports:      exports,
	}
}
