package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/middleware"
)

// createTripRequest is the JSON body for POST /trips.
// Dates use the "2006-01-02" wire format via openapi_types.Date.
type createTripRequest struct {
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      *int               `json:"budget,omitempty"`
	Travelers   int                `json:"travelers"`
	Preferences []string           `json:"preferences,omitempty"`
}

// updateStatusRequest is the JSON body for PATCH /trips/{tripID}/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// tripResponse is the JSON shape of a trip in every response.
type tripResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Budget      *int               `json:"budget,omitempty"`
	Travelers   int                `json:"travelers"`
	Preferences []string           `json:"preferences,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// paginatedTrips is the JSON shape of GET /trips.
type paginatedTrips struct {
	Data       []tripResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateTrip handles POST /trips.
// The created trip's itinerary generation starts asynchronously; the response
// returns before any itinerary day exists.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		unauthorizedError(w)
		return
	}

	var body createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid request body")
		return
	}

	trip := domain.Trip{
		Title:       body.Title,
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		Budget:      body.Budget,
		Travelers:   body.Travelers,
		Preferences: body.Preferences,
		UserID:      userID,
	}
	if body.Description != nil {
		trip.Description = *body.Description
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		unauthorizedError(w)
		return
	}

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.trips.ListByUser(r.Context(), userID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, paginatedTrips{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
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

	trip, err := s.trips.GetByID(r.Context(), userID, tripID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTripStatus handles PATCH /trips/{tripID}/status.
func (s *Server) UpdateTripStatus(w http.ResponseWriter, r *http.Request) {
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

	var body updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid request body")
		return
	}

	updated, err := s.trips.UpdateStatus(r.Context(), userID, tripID, domain.TripStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
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

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ----------------------------------------------------------------

// pathUUID parses the named chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// queryInt returns the named query parameter as *int, or nil when absent or
// not a number.
func queryInt(r *http.Request, name string) *int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// tripToResponse converts a domain.Trip into its JSON response shape.
func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:          t.ID,
		Title:       t.Title,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Budget:      t.Budget,
		Travelers:   t.Travelers,
		Preferences: t.Preferences,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Description != "" {
		resp.Description = &t.Description
	}
	return resp
}
