package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mira/puzzleacademy/internal/errors"
	"github.com/mira/puzzleacademy/internal/logger"
)

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing profiles")

	profiles, err := s.ProfileRepo.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"profiles": profiles,
		"current":  profileFromContext(r.Context()),
	})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		log.Warn("create profile with empty name")
		handleError(w, r, errors.NewBadRequestError("name required"))
		return
	}
	if req.Age <= 0 {
		handleError(w, r, errors.NewBadRequestError("age must be positive"))
		return
	}

	profile, err := s.ProfileRepo.Create(r.Context(), req.Name, req.Age)
	if err != nil {
		handleError(w, r, err)
		return
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusCreated, profile)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("invalid profile id: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid profile id"))
		return
	}

	profile, err := s.ProfileRepo.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if profile == nil {
		handleError(w, r, errors.NewNotFoundError("profile", id))
		return
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Warn("invalid profile id for delete: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid profile id"))
		return
	}

	if err := s.ProfileRepo.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	if current := profileFromContext(r.Context()); current != nil && current.ID == id {
		clearProfileCookie(w)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"deleted": id})
}
