package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
)

// Day is one parsed day of a generated itinerary, not yet persisted.
type Day struct {
	Index      int
	Theme      string
	Activities []domain.Activity
}

// ParseItinerary extracts and validates the day array from raw model output.
//
// Models wrap the JSON in prose more often than not, so the parser scans for
// the first balanced top-level array rather than decoding the whole text.
// A parse either yields every day fully validated or fails with
// domain.ErrMalformedResponse — no day is ever partially accepted.
func ParseItinerary(raw string) ([]Day, error) {
	arr, ok := extractArray(raw)
	if !ok {
		return nil, fmt.Errorf("planner.ParseItinerary: no day array in output: %w", domain.ErrMalformedResponse)
	}

	var rawDays []rawDay
	dec := json.NewDecoder(bytes.NewReader([]byte(arr)))
	if err := dec.Decode(&rawDays); err != nil {
		return nil, fmt.Errorf("planner.ParseItinerary: decode: %v: %w", err, domain.ErrMalformedResponse)
	}
	if len(rawDays) == 0 {
		return nil, fmt.Errorf("planner.ParseItinerary: empty day array: %w", domain.ErrMalformedResponse)
	}

	days := make([]Day, 0, len(rawDays))
	for i, rd := range rawDays {
		day, err := rd.validate()
		if err != nil {
			return nil, fmt.Errorf("planner.ParseItinerary: day %d: %v: %w", i+1, err, domain.ErrMalformedResponse)
		}
		days = append(days, day)
	}

	return days, nil
}

// rawDay mirrors the shape the prompt asks for, with pointers where presence
// must be distinguished from the zero value.
type rawDay struct {
	Day        *float64      `json:"day"`
	Theme      string        `json:"theme"`
	Activities []rawActivity `json:"activities"`
}

type rawActivity struct {
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Duration    string    `json:"duration"`
	Cost        flexFloat `json:"cost"`
	Category    string    `json:"category"`
	Tips        string    `json:"tips"`
}

// validate checks the minimal required shape and converts to a Day.
func (rd rawDay) validate() (Day, error) {
	if rd.Day == nil {
		return Day{}, fmt.Errorf("missing numeric day index")
	}
	index := int(*rd.Day)
	if index < 1 {
		return Day{}, fmt.Errorf("day index %d out of range", index)
	}
	if rd.Activities == nil {
		return Day{}, fmt.Errorf("missing activities array")
	}

	for i, a := range rd.Activities {
		if a.Time == "" || a.Title == "" || a.Description == "" || a.Category == "" {
			return Day{}, fmt.Errorf("activity %d missing required field", i+1)
		}
	}

	theme := rd.Theme
	if theme == "" {
		theme = fmt.Sprintf("Day %d", index)
	}

	activities := lo.Map(rd.Activities, func(a rawActivity, _ int) domain.Activity {
		return domain.Activity{
			Time:        a.Time,
			Title:       a.Title,
			Description: a.Description,
			Location:    a.Location,
			Duration:    a.Duration,
			Cost:        a.Cost.value,
			Category:    a.Category,
			Tips:        a.Tips,
		}
	})

	return Day{Index: index, Theme: theme, Activities: activities}, nil
}

// flexFloat accepts a JSON number or a numeric string ("25", "$25") for cost.
// Anything else fails the whole parse.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("cost is neither number nor string")
	}
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cost %q is not numeric", s)
	}
	f.value = &n
	return nil
}

// extractArray returns the first balanced top-level array literal in text,
// tolerating commentary the model emits before and after it. Brackets inside
// JSON strings are skipped while matching.
func extractArray(text string) (string, bool) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
