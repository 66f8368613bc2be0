package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mira/puzzleacademy/internal/catalog"
	"github.com/mira/puzzleacademy/internal/db"
	"github.com/mira/puzzleacademy/internal/engine"
	"github.com/mira/puzzleacademy/internal/repository"
	"github.com/mira/puzzleacademy/internal/rooms"
)

type Server struct {
	DB          *db.DB
	Catalog     *catalog.Catalog
	Engine      *engine.Engine
	Rooms       *rooms.Store
	ProfileRepo repository.ProfileRepository
	StatsRepo   repository.StatsRepository
	SessionRepo repository.SessionRepository

	// DefaultPuzzleCount is used when a session request does not say how
	// many puzzles it wants.
	DefaultPuzzleCount int
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(s.profileMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Get("/profiles", s.handleProfiles)
	r.Post("/profiles", s.handleCreateProfile)
	r.Post("/profiles/{id}/select", s.handleSelectProfile)
	r.Post("/profiles/{id}/delete", s.handleDeleteProfile)

	r.Get("/puzzles", s.handlePuzzles)
	r.Get("/puzzles/{id}", s.handlePuzzleDetail)

	r.Post("/play/start", s.handleStartSession)
	r.Get("/play/current", s.handleCurrentSession)
	r.Post("/play/answer", s.handleSubmitAnswer)
	r.Post("/play/hint", s.handleUseHint)
	r.Post("/play/next", s.handleNextPuzzle)
	r.Post("/play/end", s.handleEndSession)

	r.Get("/stats", s.handleStats)
	r.Get("/stats/history", s.handleHistory)
	r.Get("/stats/leaderboard", s.handleLeaderboard)

	r.Get("/rooms", s.handleRooms)
	r.Post("/rooms", s.handleCreateRoom)
	r.Post("/rooms/{id}/join", s.handleJoinRoom)
	r.Post("/rooms/{id}/leave", s.handleLeaveRoom)

	return r
}
