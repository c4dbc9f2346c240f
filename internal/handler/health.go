package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool and by a thin wrapper over
// *redis.Client; the health endpoint only needs connectivity checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler returns a handler for GET /healthz that pings the database
// and cache. It returns 200 when both respond, 503 otherwise.
func NewHealthHandler(db, cache Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus, cacheStatus := "ok", "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "error", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}
		if err := cache.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "error", err)
			cacheStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  cacheStatus,
		})
	}
}
