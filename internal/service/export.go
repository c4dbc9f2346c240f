package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// ExportService renders a trip's generated itinerary as an iCalendar file:
// one all-day event per itinerary day, with the day's activities in the
// event description.
type ExportService struct {
	trips repo.TripRepo
	days  repo.ItineraryRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, days repo.ItineraryRepo) *ExportService {
	return &ExportService{trips: trips, days: days}
}

// Calendar returns the trip's itinerary serialized as iCalendar text.
// The requester must own the trip. A trip with no generated days yields a
// calendar with zero events, which importers handle fine.
func (s *ExportService) Calendar(ctx context.Context, userID, tripID uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.Calendar: %w", err)
	}
	if trip.UserID != userID {
		return "", fmt.Errorf("service.ExportService.Calendar: %w", domain.ErrAccessDenied)
	}

	days, err := s.days.ListByTrip(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.Calendar: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TripWeaver//Itinerary Export//EN")

	now := time.Now().UTC()
	for _, day := range days {
		date := trip.StartDate.AddDate(0, 0, day.Day-1)

		event := cal.AddEvent(fmt.Sprintf("%s-day-%d@tripweaver", trip.ID, day.Day))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s: %s", trip.Title, day.Theme))
		event.SetLocation(trip.Destination)
		event.SetDescription(describeActivities(day.Activities))
	}

	return cal.Serialize(), nil
}

// describeActivities renders one line per activity for the event description.
func describeActivities(activities []domain.Activity) string {
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		line := fmt.Sprintf("%s %s", a.Time, a.Title)
		if a.Location != "" {
			line += " @ " + a.Location
		}
		if a.Cost != nil {
			line += fmt.Sprintf(" ($%.0f)", *a.Cost)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
