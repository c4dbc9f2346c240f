// Package planner holds the itinerary generation pipeline: the prompt builder,
// the model-response parser, and the provider client. It knows nothing about
// HTTP or persistence — the service layer wires it to both.
package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// BuildPrompt renders the generation instruction for a trip. It is a pure
// function of the trip's fields: same trip in, same prompt out.
//
// The prompt pins down the exact response shape (a JSON day array with 4-8
// activities per day and a fixed category vocabulary) so the parser has a
// stable contract to validate against.
func BuildPrompt(trip domain.Trip) string {
	days := trip.DurationDays()

	budgetInfo := "Budget: Flexible (provide options for different price ranges)"
	if trip.Budget != nil {
		budgetInfo = fmt.Sprintf("Budget: $%d total (approximately $%d per day)",
			*trip.Budget, PerDayBudget(*trip.Budget, days))
	}

	preferencesInfo := "No specific preferences mentioned - provide a well-rounded experience."
	if len(trip.Preferences) > 0 {
		preferencesInfo = fmt.Sprintf(
			"Travel preferences: %s. Please prioritize activities that align with these interests.",
			strings.Join(trip.Preferences, ", "))
	}

	notes := trip.Description
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`You are an expert travel planner. Create a detailed, realistic %d-day travel itinerary for %s.

TRIP DETAILS:
- Destination: %s
- Duration: %d days (%s to %s)
- Number of travelers: %d
- %s
- %s
- Additional notes: %s

REQUIREMENTS:
1. Create a practical day-by-day schedule with realistic timing
2. Include a mix of must-see attractions, local experiences, and downtime
3. Consider travel time between locations
4. Provide specific locations with addresses when possible
5. Include meal recommendations that fit the budget and preferences
6. Add cultural insights and local tips
7. Balance popular attractions with hidden gems
8. Consider the group size for activity recommendations

For each day, provide 4-8 activities with:
- Realistic time slots (consider opening hours, travel time, meal times)
- Detailed descriptions that explain WHY this activity is recommended
- Specific locations with neighborhood/district information
- Estimated duration and costs
- Practical tips (booking requirements, best times to visit, etc.)

RESPONSE FORMAT:
Return a JSON array where each element represents a day:

[
  {
    "day": 1,
    "theme": "Arrival & City Center Exploration",
    "activities": [
      {
        "time": "10:00",
        "title": "Activity Name",
        "description": "Detailed description explaining what to expect, why it's special, and practical tips",
        "location": "Specific address or landmark, District/Neighborhood",
        "duration": "2 hours",
        "cost": 25,
        "category": "sightseeing",
        "tips": "Practical advice like 'book in advance' or 'best photo spots'"
      }
    ]
  }
]

Categories to use: %s

Make this itinerary memorable, practical, and perfectly tailored to the traveler's needs!`,
		days, trip.Destination,
		trip.Destination,
		days, trip.StartDate.Format(dateLayout), trip.EndDate.Format(dateLayout),
		trip.Travelers,
		budgetInfo,
		preferencesInfo,
		notes,
		strings.Join(domain.Categories, ", "))
}

// PerDayBudget returns the per-day average of a total budget, rounded half-up.
func PerDayBudget(total, days int) int {
	return int(math.Round(float64(total) / float64(days)))
}
