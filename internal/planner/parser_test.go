package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/planner"
)

// validDayArray is a minimal well-formed two-day response.
const validDayArray = `[
  {
    "day": 1,
    "theme": "Arrival",
    "activities": [
      {"time": "10:00", "title": "Check in", "description": "Drop bags at the hotel", "category": "accommodation"},
      {"time": "12:00", "title": "Lunch", "description": "Bistro near the hotel", "category": "food", "cost": 25, "location": "Le Marais", "tips": "book ahead"}
    ]
  },
  {
    "day": 2,
    "activities": [
      {"time": "09:00", "title": "Museum", "description": "Morning at the Louvre", "category": "culture", "duration": "3 hours"}
    ]
  }
]`

func TestParseItinerary_PlainArray(t *testing.T) {
	days, err := planner.ParseItinerary(validDayArray)

	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].Index)
	assert.Equal(t, "Arrival", days[0].Theme)
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, "Check in", days[0].Activities[0].Title)
	require.NotNil(t, days[0].Activities[1].Cost)
	assert.Equal(t, 25.0, *days[0].Activities[1].Cost)
	assert.Equal(t, "Le Marais", days[0].Activities[1].Location)
	assert.Equal(t, "book ahead", days[0].Activities[1].Tips)
}

// Models routinely wrap the JSON in prose; the parser must dig the array out.
func TestParseItinerary_ProseWrapped(t *testing.T) {
	raw := "Here is your itinerary!\n\n" + validDayArray + "\n\nEnjoy your trip, and let me know if you want changes."

	days, err := planner.ParseItinerary(raw)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Arrival", days[0].Theme)
}

func TestParseItinerary_MarkdownFence(t *testing.T) {
	raw := "```json\n" + validDayArray + "\n```"

	days, err := planner.ParseItinerary(raw)

	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestParseItinerary_MissingTheme_Defaulted(t *testing.T) {
	days, err := planner.ParseItinerary(validDayArray)

	require.NoError(t, err)
	assert.Equal(t, "Day 2", days[1].Theme)
}

func TestParseItinerary_NoArray_Malformed(t *testing.T) {
	_, err := planner.ParseItinerary("I cannot help with that.")

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseItinerary_EmptyArray_Malformed(t *testing.T) {
	_, err := planner.ParseItinerary("[]")

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseItinerary_ActivityMissingTitle_Malformed(t *testing.T) {
	raw := `[{"day": 1, "activities": [{"time": "10:00", "description": "no title here", "category": "food"}]}]`

	_, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseItinerary_MissingDayIndex_Malformed(t *testing.T) {
	raw := `[{"theme": "No index", "activities": [{"time": "10:00", "title": "X", "description": "Y", "category": "food"}]}]`

	_, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseItinerary_MissingActivities_Malformed(t *testing.T) {
	raw := `[{"day": 1, "theme": "No activities"}]`

	_, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestParseItinerary_NonArrayTopLevel_Malformed(t *testing.T) {
	raw := `{"day": 1, "activities": []}`

	_, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

// One bad day rejects the whole parse — no partial acceptance.
func TestParseItinerary_OneBadDayRejectsAll(t *testing.T) {
	raw := `[
	  {"day": 1, "activities": [{"time": "10:00", "title": "Good", "description": "ok", "category": "food"}]},
	  {"day": 2, "activities": [{"time": "11:00", "description": "missing title", "category": "food"}]}
	]`

	days, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
	assert.Nil(t, days)
}

func TestParseItinerary_CostAsNumericString_Coerced(t *testing.T) {
	raw := `[{"day": 1, "activities": [{"time": "10:00", "title": "Tour", "description": "walking tour", "category": "sightseeing", "cost": "$40"}]}]`

	days, err := planner.ParseItinerary(raw)

	require.NoError(t, err)
	require.NotNil(t, days[0].Activities[0].Cost)
	assert.Equal(t, 40.0, *days[0].Activities[0].Cost)
}

func TestParseItinerary_CostNotNumeric_Malformed(t *testing.T) {
	raw := `[{"day": 1, "activities": [{"time": "10:00", "title": "Tour", "description": "walking tour", "category": "sightseeing", "cost": "free-ish"}]}]`

	_, err := planner.ParseItinerary(raw)

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

// Unknown categories pass through untouched; rejection is the renderer's
// problem, not the parser's.
func TestParseItinerary_UnknownCategoryAccepted(t *testing.T) {
	raw := `[{"day": 1, "activities": [{"time": "10:00", "title": "Spa", "description": "hot springs", "category": "wellness"}]}]`

	days, err := planner.ParseItinerary(raw)

	require.NoError(t, err)
	assert.Equal(t, "wellness", days[0].Activities[0].Category)
	assert.False(t, domain.KnownCategory("wellness"))
}

// Brackets inside activity strings must not confuse the array matcher.
func TestParseItinerary_BracketsInsideStrings(t *testing.T) {
	raw := `The plan [draft] follows: [{"day": 1, "activities": [{"time": "10:00", "title": "Walk", "description": "route [A] then [B]", "category": "nature"}]}]`

	// The first balanced array is "[draft]" — not valid day JSON, so the
	// parse fails. This pins the first-balanced-array contract.
	_, err := planner.ParseItinerary(raw)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	// Without the leading prose bracket, the payload parses and the
	// brackets inside the description survive.
	days, err := planner.ParseItinerary(`[{"day": 1, "activities": [{"time": "10:00", "title": "Walk", "description": "route [A] then [B]", "category": "nature"}]}]`)
	require.NoError(t, err)
	assert.Equal(t, "route [A] then [B]", days[0].Activities[0].Description)
}
