package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/wayfarer-labs/tripweaver/backend/internal/middleware"
	"github.com/wayfarer-labs/tripweaver/backend/spec"
)

// maxBodySize caps request bodies at 1 MiB; no legitimate request comes close.
const maxBodySize = 1 << 20

// RouterConfig carries the cross-cutting dependencies NewRouter needs beyond
// the Server itself.
type RouterConfig struct {
	JWTSecret   string
	CORSOrigins []string
	DB          Pinger
	Cache       Pinger
	Logger      *slog.Logger
}

// NewRouter builds the chi router with all middleware and routes.
// Health, the OpenAPI document, and destination search are public; everything
// touching trips requires a valid bearer token.
// Rate limiting is applied globally: 60 requests per minute per IP.
func NewRouter(s *Server, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(httprate.LimitByIP(60, time.Minute))
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))

	r.Get("/healthz", NewHealthHandler(cfg.DB, cfg.Cache, cfg.Logger))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	r.Get("/destinations", s.SearchDestinations)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewJWTAuth(cfg.JWTSecret))

		r.Post("/trips", s.CreateTrip)
		r.Get("/trips", s.ListTrips)
		r.Get("/trips/{tripID}", s.GetTrip)
		r.Patch("/trips/{tripID}/status", s.UpdateTripStatus)
		r.Delete("/trips/{tripID}", s.DeleteTrip)

		r.Get("/trips/{tripID}/itinerary", s.GetItinerary)
		r.Post("/trips/{tripID}/regenerate", s.RegenerateItinerary)
		r.Get("/trips/{tripID}/itinerary.ics", s.ExportItinerary)
	})

	return r
}
