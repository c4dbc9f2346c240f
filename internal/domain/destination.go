package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a curated reference entry backing the destination picker.
// Destinations are global — seeded once at startup and never owned by a user.
type Destination struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	Country            string      `json:"country"`
	Description        string      `json:"description"`
	PopularAttractions []string    `json:"popular_attractions"`
	BestTimeToVisit    string      `json:"best_time_to_visit"`
	AverageBudget      BudgetTiers `json:"average_budget"`
	Tags               []string    `json:"tags"`
	CreatedAt          time.Time   `json:"created_at"`
}

// BudgetTiers holds rough per-day costs for a destination at three price points.
type BudgetTiers struct {
	Budget   int `json:"budget"`
	MidRange int `json:"midRange"`
	Luxury   int `json:"luxury"`
}
