// Package engine owns the lifecycle of play sessions: puzzle cursor, score
// accumulation, hint economy and stats propagation. One active session is
// held per profile; everything else about the player lives behind the
// injected repositories.
package engine

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mira/puzzleacademy/internal/check"
	"github.com/mira/puzzleacademy/internal/jobs"
	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
	"github.com/mira/puzzleacademy/internal/selector"
)

// DefaultHintPenalty is the score cost of one hint.
const DefaultHintPenalty = 10

// Engine is the session state machine. All operations guard on their
// preconditions and are safe no-ops when they fail: the engine is driven by
// UI-shaped callers that already gate on session presence, so "no session"
// and "no such profile" are expected conditions, not errors.
type Engine struct {
	mu          sync.Mutex
	profiles    repository.ProfileRepository
	stats       repository.StatsRepository
	queue       jobs.JobQueue
	hintPenalty int
	sessions    map[int64]*models.Session
	countdowns  map[int64]*Countdown
}

// Option configures an Engine.
type Option func(*Engine)

// WithHintPenalty overrides the per-hint score penalty.
func WithHintPenalty(penalty int) Option {
	return func(e *Engine) {
		if penalty >= 0 {
			e.hintPenalty = penalty
		}
	}
}

// WithJobQueue sets the queue used to archive completed sessions. Without
// one, sessions are simply not archived; stats still update synchronously.
func WithJobQueue(q jobs.JobQueue) Option {
	return func(e *Engine) {
		e.queue = q
	}
}

// New creates an Engine with the given collaborators.
func New(profiles repository.ProfileRepository, stats repository.StatsRepository, opts ...Option) *Engine {
	e := &Engine{
		profiles:    profiles,
		stats:       stats,
		hintPenalty: DefaultHintPenalty,
		sessions:    make(map[int64]*models.Session),
		countdowns:  make(map[int64]*Countdown),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession begins a new play-through for the profile. It is a no-op
// (returning nil) when the profile does not exist or the puzzle list is
// empty. An unfinished previous session for the same profile is abandoned.
func (e *Engine) StartSession(ctx context.Context, profileID int64, puzzles []models.Puzzle) *models.Session {
	log := logger.FromContext(ctx)

	profile, err := e.profiles.Get(ctx, profileID)
	if err != nil {
		log.Error("failed to load profile %d: %v", profileID, err)
		return nil
	}
	if profile == nil {
		log.Debug("start session ignored: no profile %d", profileID)
		return nil
	}
	if len(puzzles) == 0 {
		log.Warn("start session ignored: empty puzzle list for profile %d", profileID)
		return nil
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Puzzles:   puzzles,
		StartTime: time.Now(),
	}

	e.mu.Lock()
	if old, ok := e.sessions[profileID]; ok {
		log.Debug("abandoning unfinished session %s for profile %d", old.ID, profileID)
		e.stopCountdownLocked(profileID)
	}
	e.sessions[profileID] = session
	e.mu.Unlock()

	e.armCountdown(profileID, session.ID)
	log.Info("session started: id=%s, profile_id=%d, puzzles=%d", session.ID, profileID, len(puzzles))
	return e.CurrentSession(profileID)
}

// SubmitAnswer records an answer against the current puzzle. Correctness is
// exact value equality against the puzzle's answer (structural types submit
// the "complete" sentinel). Each puzzle takes exactly one answer; repeated
// submissions are ignored. Returns false when there is no active session.
func (e *Engine) SubmitAnswer(ctx context.Context, profileID int64, answer models.Answer, timeSpentSeconds int) bool {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	session, ok := e.sessions[profileID]
	if !ok {
		e.mu.Unlock()
		log.Debug("submit ignored: no active session for profile %d", profileID)
		return false
	}
	puzzle, correct, recorded := e.submitLocked(profileID, session, answer, timeSpentSeconds)
	e.mu.Unlock()

	if puzzle == nil {
		return false
	}
	if !recorded {
		log.Debug("submit ignored: puzzle %s already answered in session %s", puzzle.ID, session.ID)
		return false
	}
	log.Debug("answer submitted: session=%s, puzzle=%s, correct=%t", session.ID, puzzle.ID, correct)
	return correct
}

// submitLocked scores and records an answer against the session's current
// puzzle. The puzzle is read, checked and mutated inside the caller's
// critical section, so a countdown firing concurrently with a caller can
// never record against a puzzle the cursor has moved past. Callers hold e.mu.
func (e *Engine) submitLocked(profileID int64, session *models.Session, answer models.Answer, timeSpentSeconds int) (puzzle *models.Puzzle, correct, recorded bool) {
	puzzle = session.CurrentPuzzle()
	if puzzle == nil {
		return nil, false, false
	}
	if n := len(session.Answers); n > 0 && session.Answers[n-1].PuzzleID == puzzle.ID {
		return puzzle, false, false
	}

	correct = check.AnswerCorrect(puzzle, answer)
	if correct {
		session.Score += puzzle.Points
		session.CorrectAnswers++
	}
	session.TimeSpent += timeSpentSeconds
	session.Answers = append(session.Answers, models.AnswerRecord{
		PuzzleID:    puzzle.ID,
		Subject:     puzzle.Subject,
		WasCorrect:  correct,
		TimeSeconds: timeSpentSeconds,
		HintsUsed:   session.HintsUsed,
		SubmittedAt: time.Now(),
	})
	e.stopCountdownLocked(profileID)
	return puzzle, correct, true
}

// UseHint returns the next unseen hint for the current puzzle and applies the
// score penalty, clamped at zero. Returns ok=false when no session is active
// or the puzzle's hints are exhausted; exhaustion has no side effects.
func (e *Engine) UseHint(ctx context.Context, profileID int64) (string, bool) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[profileID]
	if !ok {
		return "", false
	}
	puzzle := session.CurrentPuzzle()
	if puzzle == nil {
		return "", false
	}
	if session.HintsUsed >= len(puzzle.Hints) {
		log.Debug("hints exhausted: session=%s, puzzle=%s", session.ID, puzzle.ID)
		return "", false
	}

	hint := puzzle.Hints[session.HintsUsed]
	session.HintsUsed++
	session.HintsUsedTotal++
	session.Score -= e.hintPenalty
	if session.Score < 0 {
		session.Score = 0
	}
	return hint, true
}

// NextPuzzle advances the cursor by one and resets the per-puzzle hint
// counter. Advancing past the last puzzle ends the session instead, so the
// caller never has to special-case the final puzzle.
func (e *Engine) NextPuzzle(ctx context.Context, profileID int64) {
	e.mu.Lock()
	session, ok := e.sessions[profileID]
	if !ok {
		e.mu.Unlock()
		return
	}
	if session.CurrentPuzzleIndex+1 >= len(session.Puzzles) {
		e.mu.Unlock()
		e.EndSession(ctx, profileID)
		return
	}
	session.CurrentPuzzleIndex++
	session.HintsUsed = 0
	e.stopCountdownLocked(profileID)
	sessionID := session.ID
	e.mu.Unlock()

	e.armCountdown(profileID, sessionID)
}

// EndSession completes the active session, propagates aggregate deltas to the
// profile's stats and hands the finished session to the archive queue. It is
// a no-op when no session is active. A stats write failure is logged and
// swallowed; the session still ends.
func (e *Engine) EndSession(ctx context.Context, profileID int64) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	session, ok := e.sessions[profileID]
	if !ok {
		e.mu.Unlock()
		return
	}
	delete(e.sessions, profileID)
	e.stopCountdownLocked(profileID)

	now := time.Now()
	session.Completed = true
	session.EndTime = &now
	finished := *session
	e.mu.Unlock()

	e.applyStats(ctx, &finished)

	if e.queue != nil {
		if err := e.queue.EnqueueSessionArchive(finished); err != nil {
			log.Warn("failed to enqueue session archive: %v", err)
		}
	}

	log.Info("session ended: id=%s, score=%d, correct=%d/%d",
		finished.ID, finished.Score, finished.CorrectAnswers, len(finished.Puzzles))
}

// CurrentSession returns a snapshot of the profile's active session, or nil.
func (e *Engine) CurrentSession(profileID int64) *models.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	session, ok := e.sessions[profileID]
	if !ok {
		return nil
	}
	snapshot := *session
	return &snapshot
}

// IsPlaying reports whether the profile has an active session.
func (e *Engine) IsPlaying(profileID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.sessions[profileID]
	return ok
}

// applyStats folds a finished session into the profile's aggregate stats.
func (e *Engine) applyStats(ctx context.Context, session *models.Session) {
	log := logger.FromContext(ctx)

	stats, err := e.stats.Get(ctx, session.ProfileID)
	if err != nil {
		log.Warn("failed to load stats for profile %d: %v", session.ProfileID, err)
		return
	}
	if stats == nil {
		stats = models.NewUserStats(session.ProfileID)
	}

	stats.TotalPuzzlesSolved += session.CorrectAnswers
	stats.TotalPlayTime += session.TimeSpent
	// Two-term running average of the previous value and the latest score.
	// Overweights recent sessions; kept for compatibility with existing
	// stored averages.
	stats.AverageScore = int(math.Round(float64(stats.AverageScore+session.Score) / 2))

	if session.CorrectAnswers > 0 {
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	} else {
		stats.CurrentStreak = 0
	}

	raiseSkills(stats, session)

	if err := e.stats.Save(ctx, *stats); err != nil {
		log.Warn("failed to save stats for profile %d: %v", session.ProfileID, err)
	}
}

// raiseSkills bumps the skill level of every subject the player answered
// flawlessly this session, capped at the selector's difficulty ceiling.
func raiseSkills(stats *models.UserStats, session *models.Session) {
	type tally struct{ total, correct int }
	perSubject := make(map[models.Subject]*tally)
	for _, a := range session.Answers {
		t := perSubject[a.Subject]
		if t == nil {
			t = &tally{}
			perSubject[a.Subject] = t
		}
		t.total++
		if a.WasCorrect {
			t.correct++
		}
	}

	if stats.SkillLevels == nil {
		stats.SkillLevels = make(map[models.Subject]int)
	}
	for subject, t := range perSubject {
		if t.total == 0 || t.correct != t.total {
			continue
		}
		level := stats.SkillLevels[subject]
		if level == 0 {
			level = 1
		}
		if level < selector.MaxDifficulty {
			stats.SkillLevels[subject] = level + 1
		} else {
			stats.SkillLevels[subject] = level
		}
	}
}

// armCountdown starts the auto-submit timer when the session's current
// puzzle is timed. The session is re-fetched under the lock so a concurrent
// restart cannot arm a timer against stale state.
func (e *Engine) armCountdown(profileID int64, sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[profileID]
	if !ok || session.ID != sessionID {
		return
	}
	puzzle := session.CurrentPuzzle()
	if puzzle == nil || !puzzle.Timed() {
		return
	}

	index := session.CurrentPuzzleIndex
	limit := puzzle.TimeLimit
	e.countdowns[profileID] = NewCountdown(time.Duration(limit)*time.Second, func() {
		e.autoSubmit(profileID, sessionID, index, limit)
	})
}

// autoSubmit fires when a timed puzzle's countdown reaches zero. The stale
// check and the submission share one critical section, so an orphaned timer
// can never record against a puzzle the session has moved past.
func (e *Engine) autoSubmit(profileID int64, sessionID string, puzzleIndex, timeLimit int) {
	e.mu.Lock()
	session, ok := e.sessions[profileID]
	if !ok || session.ID != sessionID || session.CurrentPuzzleIndex != puzzleIndex {
		e.mu.Unlock()
		return
	}
	_, _, recorded := e.submitLocked(profileID, session, models.StringAnswer(models.AnswerIncomplete), timeLimit)
	e.mu.Unlock()

	if recorded {
		logger.Default().WithPrefix("countdown").Debug("time limit reached: session=%s, puzzle_index=%d", sessionID, puzzleIndex)
	}
}

// stopCountdownLocked cancels the profile's countdown. Callers hold e.mu.
func (e *Engine) stopCountdownLocked(profileID int64) {
	if cd, ok := e.countdowns[profileID]; ok {
		cd.Stop()
		delete(e.countdowns, profileID)
	}
}
