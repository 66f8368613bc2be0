package models

import "time"

// RoomStatus is the lifecycle state of a multiplayer room.
type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

// Room is a locally simulated multiplayer lobby. There is no networking
// behind it; rooms exist only in this process.
type Room struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Host       string     `json:"host"`
	Players    []string   `json:"players"`
	MaxPlayers int        `json:"max_players"`
	Difficulty int        `json:"difficulty"`
	Subject    string     `json:"subject"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}
