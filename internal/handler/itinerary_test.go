package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/worker"
)

func TestGetItinerary_OK(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	itins := &mockItineraryService{listByTrip: func(_ context.Context, uid, tid uuid.UUID) ([]domain.ItineraryDay, error) {
		assert.Equal(t, userID, uid)
		assert.Equal(t, tripID, tid)
		return []domain.ItineraryDay{
			{TripID: tripID, Day: 1, Theme: "Arrival", Activities: []domain.Activity{
				{Time: "10:00", Title: "Check in", Description: "Hotel", Category: "accommodation"},
			}},
		}, nil
	}}
	router := testRouter(serverWith(nil, itins, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodGet, "/trips/"+tripID.String()+"/itinerary", userID, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var days []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, 1)
	assert.Equal(t, "Arrival", days[0]["theme"])
}

// An itinerary that has not generated yet is an empty array, not an error.
func TestGetItinerary_EmptyWhileGenerating(t *testing.T) {
	itins := &mockItineraryService{listByTrip: func(_ context.Context, _, _ uuid.UUID) ([]domain.ItineraryDay, error) {
		return []domain.ItineraryDay{}, nil
	}}
	router := testRouter(serverWith(nil, itins, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary", uuid.New(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRegenerateItinerary_Accepted(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	called := false
	itins := &mockItineraryService{regenerate: func(_ context.Context, uid, tid uuid.UUID) error {
		assert.Equal(t, userID, uid)
		assert.Equal(t, tripID, tid)
		called = true
		return nil
	}}
	router := testRouter(serverWith(nil, itins, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodPost, "/trips/"+tripID.String()+"/regenerate", userID, nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, called)
	assert.Contains(t, rec.Body.String(), "regenerating itinerary")
}

func TestRegenerateItinerary_QueueFullIs503(t *testing.T) {
	itins := &mockItineraryService{regenerate: func(_ context.Context, _, _ uuid.UUID) error {
		return worker.ErrQueueFull
	}}
	router := testRouter(serverWith(nil, itins, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/regenerate", uuid.New(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "queue_full", code)
}

func TestRegenerateItinerary_NonOwnerIs403(t *testing.T) {
	itins := &mockItineraryService{regenerate: func(_ context.Context, _, _ uuid.UUID) error {
		return wrapAccessDenied()
	}}
	router := testRouter(serverWith(nil, itins, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/regenerate", uuid.New(), nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestExportItinerary_ServesCalendar(t *testing.T) {
	userID := uuid.New()
	tripID := uuid.New()
	exports := &mockExportService{calendar: func(_ context.Context, uid, tid uuid.UUID) (string, error) {
		assert.Equal(t, userID, uid)
		assert.Equal(t, tripID, tid)
		return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
	}}
	router := testRouter(serverWith(nil, nil, nil, exports))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodGet, "/trips/"+tripID.String()+"/itinerary.ics", userID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary.ics"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestExportItinerary_NotFound(t *testing.T) {
	exports := &mockExportService{calendar: func(_ context.Context, _, _ uuid.UUID) (string, error) {
		return "", wrapNotFound()
	}}
	router := testRouter(serverWith(nil, nil, nil, exports))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary.ics", uuid.New(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
