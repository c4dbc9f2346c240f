package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryDay is one generated day of a trip's plan.
// Day indices are 1-based and unique per trip; a fully generated itinerary
// covers 1..Trip.DurationDays() with no gaps.
// Rows are created only by the generator and deleted in bulk on regeneration.
type ItineraryDay struct {
	ID         uuid.UUID  `json:"id"`
	TripID     uuid.UUID  `json:"trip_id"`
	Day        int        `json:"day"`
	Theme      string     `json:"theme,omitempty"`
	Activities []Activity `json:"activities"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Activity is a single scheduled item within an itinerary day.
// Activities are embedded in their day (stored as JSONB), not independently
// addressable.
type Activity struct {
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Category    string   `json:"category"`
	Tips        string   `json:"tips,omitempty"`
}

// Categories is the vocabulary the generator is instructed to use.
// Unrecognized categories are accepted anyway; callers that render icons or
// colours should fall back to a default when KnownCategory returns false.
var Categories = []string{
	"sightseeing", "food", "transport", "accommodation", "shopping",
	"entertainment", "nature", "culture", "adventure", "relaxation",
}

// KnownCategory reports whether c is part of the fixed category vocabulary.
func KnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
