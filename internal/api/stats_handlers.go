package api

import (
	"net/http"
	"strconv"

	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	profile := profileFromContext(r.Context())

	stats, err := s.StatsRepo.Get(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if stats == nil {
		log.Debug("no stats yet for profile %d, returning defaults", profile.ID)
		stats = models.NewUserStats(profile.ID)
	}
	respondJSON(w, r, http.StatusOK, stats)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	q := r.URL.Query()

	filter := models.HistoryFilter{
		ProfileID:     profile.ID,
		Subject:       models.Subject(q.Get("subject")),
		CompletedOnly: q.Get("completed") == "true",
		OrderBy:       q.Get("order_by"),
		OrderDir:      q.Get("order_dir"),
	}
	if raw := q.Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if raw := q.Get("offset"); raw != "" {
		filter.Offset, _ = strconv.Atoi(raw)
	}

	sessions, err := s.SessionRepo.History(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	total, err := s.SessionRepo.CountHistory(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.StatsRepo.Leaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"leaderboard": entries})
}
