// Package domain contains the core data types for the TripWeaver API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, planner, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip. Status is set by the user;
// the itinerary generator never changes it.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusConfirmed TripStatus = "confirmed"
	StatusCompleted TripStatus = "completed"
)

// ValidStatus reports whether s is one of the known trip statuses.
func ValidStatus(s TripStatus) bool {
	switch s {
	case StatusPlanning, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Trip represents a planned journey owned by a single user.
// A trip is the top-level aggregate; itinerary days belong to a trip.
// StartDate and EndDate are calendar dates (midnight UTC, no time component).
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Budget      *int       `json:"budget,omitempty"` // total for the whole trip, currency-unspecified
	Travelers   int        `json:"travelers"`
	Preferences []string   `json:"preferences,omitempty"`
	UserID      uuid.UUID  `json:"user_id"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DurationDays returns the trip length in days, counting both the start and
// end date. A trip starting and ending on the same day lasts 1 day.
func (t Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}
