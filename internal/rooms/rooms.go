// Package rooms simulates a multiplayer lobby browser in process memory.
// There is no networking behind it; it exists so the room flows can be
// exercised end to end without a realtime backend.
package rooms

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mira/puzzleacademy/internal/errors"
	"github.com/mira/puzzleacademy/internal/models"
)

// DefaultMaxPlayers caps room size when the creator does not pick one.
const DefaultMaxPlayers = 4

// Store holds every live room. All operations are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*models.Room
}

// NewStore creates an empty room store.
func NewStore() *Store {
	return &Store{rooms: make(map[string]*models.Room)}
}

// Create opens a room and auto-joins the host as its first player.
func (s *Store) Create(name, host string, maxPlayers, difficulty int, subject string) (*models.Room, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", "required")
	}
	if host == "" {
		return nil, errors.NewValidationError("host", "required")
	}
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	room := &models.Room{
		ID:         uuid.NewString(),
		Name:       name,
		Host:       host,
		Players:    []string{host},
		MaxPlayers: maxPlayers,
		Difficulty: difficulty,
		Subject:    subject,
		Status:     models.RoomWaiting,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.rooms[room.ID] = room
	s.mu.Unlock()

	return snapshot(room), nil
}

// Join adds a player to a waiting room. Full rooms and duplicate names are
// rejected.
func (s *Store) Join(roomID, player string) (*models.Room, error) {
	if player == "" {
		return nil, errors.NewValidationError("player", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, errors.NewNotFoundError("room", roomID)
	}
	if room.Status != models.RoomWaiting {
		return nil, errors.NewConflictError("room is no longer accepting players")
	}
	if len(room.Players) >= room.MaxPlayers {
		return nil, errors.NewConflictError("room is full")
	}
	for _, p := range room.Players {
		if p == player {
			return nil, errors.NewConflictError("player already in room")
		}
	}

	room.Players = append(room.Players, player)
	return snapshot(room), nil
}

// Leave removes a player from a room. When the host leaves, the next player
// is promoted; a room with no players left is removed.
func (s *Store) Leave(roomID, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return errors.NewNotFoundError("room", roomID)
	}

	idx := -1
	for i, p := range room.Players {
		if p == player {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NewNotFoundError("player", player)
	}

	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	if len(room.Players) == 0 {
		delete(s.rooms, roomID)
		return nil
	}
	if room.Host == player {
		room.Host = room.Players[0]
	}
	return nil
}

// Get returns a snapshot of one room, or nil when it does not exist.
func (s *Store) Get(roomID string) *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	return snapshot(room)
}

// List returns snapshots of every room, newest first.
func (s *Store) List() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		out = append(out, *snapshot(room))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// snapshot copies a room so callers never share the store's player slice.
func snapshot(room *models.Room) *models.Room {
	cp := *room
	cp.Players = append([]string(nil), room.Players...)
	return &cp
}
