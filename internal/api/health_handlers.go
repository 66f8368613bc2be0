package api

import (
	"net/http"

	"github.com/mira/puzzleacademy/internal/logger"
)

// handleHealth is the liveness probe; it only says the process is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady is the readiness probe; it checks the database and catalog.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.DB.PingContext(r.Context()); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}
	if s.Catalog.Size() == 0 {
		log.Warn("readiness check failed - empty catalog")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Catalog unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
