package handler

import (
	"net/http"
)

// SearchDestinations handles GET /destinations?q=.
// Queries shorter than 2 characters return an empty list. The route is
// public — the catalog holds no user data.
func (s *Server) SearchDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := s.destinations.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dests)
}
