package api

import (
	"net/http"

	"github.com/mira/puzzleacademy/internal/errors"
	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/selector"
)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	profile := profileFromContext(r.Context())

	var req struct {
		Subjects []models.Subject `json:"subjects"`
		Count    int              `json:"count"`
		Level    int              `json:"level"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if req.Count <= 0 {
		req.Count = s.DefaultPuzzleCount
	}
	level := req.Level
	if level <= 0 {
		level = s.preferredLevel(r, profile.ID, req.Subjects)
	}

	puzzles := selector.Select(s.Catalog.All(), selector.Request{
		Level:    level,
		Subjects: req.Subjects,
		Count:    req.Count,
		AgeGroup: profile.AgeGroup,
	})
	if len(puzzles) == 0 {
		handleError(w, r, errors.NewConflictError("no puzzles available for this selection"))
		return
	}

	session := s.Engine.StartSession(r.Context(), profile.ID, puzzles)
	if session == nil {
		handleError(w, r, errors.NewConflictError("could not start session"))
		return
	}

	log.Info("session started for profile %d with %d puzzles at level %d",
		profile.ID, len(session.Puzzles), level)
	respondJSON(w, r, http.StatusCreated, session)
}

// preferredLevel derives a starting difficulty from the profile's stats:
// the lowest skill level across the requested subjects, so a weak subject is
// never skipped past. Missing stats mean level 1.
func (s *Server) preferredLevel(r *http.Request, profileID int64, subjects []models.Subject) int {
	stats, err := s.StatsRepo.Get(r.Context(), profileID)
	if err != nil || stats == nil {
		return 1
	}
	if len(subjects) == 0 {
		subjects = selector.DefaultSubjects
	}

	level := 0
	for _, subject := range subjects {
		sl, ok := stats.SkillLevels[subject]
		if !ok || sl < 1 {
			sl = 1
		}
		if level == 0 || sl < level {
			level = sl
		}
	}
	if level == 0 {
		level = stats.DifficultyPreference
	}
	if level < 1 {
		level = 1
	}
	return level
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	session := s.Engine.CurrentSession(profile.ID)
	if session == nil {
		handleError(w, r, errors.NewNotFoundError("session", "active"))
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	var req struct {
		Answer      models.Answer `json:"answer"`
		TimeSeconds int           `json:"time_seconds"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.Answer.IsZero() {
		handleError(w, r, errors.NewBadRequestError("answer required"))
		return
	}
	if req.TimeSeconds < 0 {
		req.TimeSeconds = 0
	}

	if !s.Engine.IsPlaying(profile.ID) {
		handleError(w, r, errors.NewConflictError("no active session"))
		return
	}

	correct := s.Engine.SubmitAnswer(r.Context(), profile.ID, req.Answer, req.TimeSeconds)
	respondJSON(w, r, http.StatusOK, map[string]any{
		"correct": correct,
		"session": s.Engine.CurrentSession(profile.ID),
	})
}

func (s *Server) handleUseHint(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	if !s.Engine.IsPlaying(profile.ID) {
		handleError(w, r, errors.NewConflictError("no active session"))
		return
	}

	hint, ok := s.Engine.UseHint(r.Context(), profile.ID)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("hint", "next"))
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{
		"hint":    hint,
		"session": s.Engine.CurrentSession(profile.ID),
	})
}

func (s *Server) handleNextPuzzle(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	if !s.Engine.IsPlaying(profile.ID) {
		handleError(w, r, errors.NewConflictError("no active session"))
		return
	}

	s.Engine.NextPuzzle(r.Context(), profile.ID)

	// Advancing past the last puzzle ends the session; report which.
	if session := s.Engine.CurrentSession(profile.ID); session != nil {
		respondJSON(w, r, http.StatusOK, map[string]any{"session": session, "ended": false})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"session": nil, "ended": true})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	if !s.Engine.IsPlaying(profile.ID) {
		handleError(w, r, errors.NewConflictError("no active session"))
		return
	}

	s.Engine.EndSession(r.Context(), profile.ID)
	respondJSON(w, r, http.StatusOK, map[string]any{"ended": true})
}
