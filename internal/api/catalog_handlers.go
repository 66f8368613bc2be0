package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mira/puzzleacademy/internal/errors"
	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
)

func (s *Server) handlePuzzles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	q := r.URL.Query()
	subject := models.Subject(q.Get("subject"))
	ptype := models.PuzzleType(q.Get("type"))

	difficulty := 0
	if raw := q.Get("difficulty"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("invalid difficulty"))
			return
		}
		difficulty = d
	}

	puzzles := s.Catalog.Filter(subject, difficulty, ptype)
	log.Debug("catalog query: subject=%s, difficulty=%d, type=%s, matches=%d",
		subject, difficulty, ptype, len(puzzles))

	respondJSON(w, r, http.StatusOK, map[string]any{
		"puzzles":  puzzles,
		"count":    len(puzzles),
		"subjects": s.Catalog.Subjects(),
	})
}

func (s *Server) handlePuzzleDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	puzzle, ok := s.Catalog.Get(id)
	if !ok {
		handleError(w, r, errors.NewNotFoundError("puzzle", id))
		return
	}
	respondJSON(w, r, http.StatusOK, puzzle)
}
