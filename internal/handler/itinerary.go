package handler

import (
	"net/http"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/middleware"
)

// GetItinerary handles GET /trips/{tripID}/itinerary.
// An empty day list means the itinerary is still generating or the last
// generation failed; clients poll or offer a regenerate button.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		unauthorizedError(w)
		return
	}
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}

	days, err := s.itineraries.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, days)
}

// RegenerateItinerary handles POST /trips/{tripID}/regenerate.
// It clears the existing itinerary synchronously and queues a fresh
// generation, returning 202 before the new itinerary exists.
func (s *Server) RegenerateItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		unauthorizedError(w)
		return
	}
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}

	if err := s.itineraries.Regenerate(r.Context(), userID, tripID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"message": "regenerating itinerary"})
}

// ExportItinerary handles GET /trips/{tripID}/itinerary.ics.
// It serves the generated itinerary as an iCalendar file.
func (s *Server) ExportItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		unauthorizedError(w)
		return
	}
	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeError(w, domain.ErrNotFound)
		return
	}

	cal, err := s.exports.Calendar(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal))
}
