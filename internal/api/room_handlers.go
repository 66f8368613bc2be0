package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mira/puzzleacademy/internal/errors"
	"github.com/mira/puzzleacademy/internal/logger"
)

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	rooms := s.Rooms.List()
	respondJSON(w, r, http.StatusOK, map[string]any{
		"rooms": rooms,
		"count": len(rooms),
	})
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	profile := profileFromContext(r.Context())

	var req struct {
		Name       string `json:"name"`
		MaxPlayers int    `json:"max_players"`
		Difficulty int    `json:"difficulty"`
		Subject    string `json:"subject"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		handleError(w, r, errors.NewBadRequestError("room name required"))
		return
	}

	room, err := s.Rooms.Create(strings.TrimSpace(req.Name), profile.Name, req.MaxPlayers, req.Difficulty, req.Subject)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("room created: id=%s, host=%s", room.ID, room.Host)
	respondJSON(w, r, http.StatusCreated, room)
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	roomID := chi.URLParam(r, "id")

	room, err := s.Rooms.Join(roomID, profile.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, room)
}

func (s *Server) handleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	roomID := chi.URLParam(r, "id")

	if err := s.Rooms.Leave(roomID, profile.Name); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"left": roomID})
}
