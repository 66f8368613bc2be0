package models

import "time"

// AnswerRecord is one submitted answer within a session.
type AnswerRecord struct {
	PuzzleID    string    `json:"puzzle_id"`
	Subject     Subject   `json:"subject"`
	WasCorrect  bool      `json:"was_correct"`
	TimeSeconds int       `json:"time_seconds"`
	HintsUsed   int       `json:"hints_used"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Session is one bounded play-through of an ordered puzzle list. The puzzle
// list is fixed at start; all other fields mutate as the player progresses.
type Session struct {
	ID                 string     `json:"id"`
	ProfileID          int64      `json:"profile_id"`
	Puzzles            []Puzzle   `json:"puzzles"`
	CurrentPuzzleIndex int        `json:"current_puzzle_index"`
	Score              int        `json:"score"`
	CorrectAnswers     int        `json:"correct_answers"`
	// HintsUsed indexes into the current puzzle's hint list and resets on
	// every advance. HintsUsedTotal is the session-lifetime count.
	HintsUsed      int            `json:"hints_used"`
	HintsUsedTotal int            `json:"hints_used_total"`
	TimeSpent      int            `json:"time_spent"` // caller-reported seconds, not wall clock
	Completed      bool           `json:"completed"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        *time.Time     `json:"end_time,omitempty"`
	Answers        []AnswerRecord `json:"answers"`
}

// CurrentPuzzle returns the puzzle under the cursor, or nil when the session
// has no puzzles or has ended.
func (s *Session) CurrentPuzzle() *Puzzle {
	if s == nil || s.Completed {
		return nil
	}
	if s.CurrentPuzzleIndex < 0 || s.CurrentPuzzleIndex >= len(s.Puzzles) {
		return nil
	}
	return &s.Puzzles[s.CurrentPuzzleIndex]
}

// SessionSummary is the archived, persisted form of a completed session.
type SessionSummary struct {
	ID             string    `json:"id"`
	ProfileID      int64     `json:"profile_id"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	PuzzleCount    int       `json:"puzzle_count"`
	HintsUsed      int       `json:"hints_used"`
	TimeSpent      int       `json:"time_spent"`
	Completed      bool      `json:"completed"`
	StartedAt      time.Time `json:"started_at"`
	EndedAt        time.Time `json:"ended_at"`
}

// HistoryFilter narrows archived session queries.
type HistoryFilter struct {
	ProfileID     int64
	Subject       Subject
	CompletedOnly bool
	Limit         int
	Offset        int
	OrderBy       string
	OrderDir      string
}
