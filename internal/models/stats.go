package models

// UserStats aggregates play results across sessions for one profile.
type UserStats struct {
	ProfileID          int64 `json:"profile_id"`
	TotalPuzzlesSolved int   `json:"total_puzzles_solved"`
	CurrentStreak      int   `json:"current_streak"`
	LongestStreak      int   `json:"longest_streak"`
	// AverageScore is a two-term running average of the previous value and
	// the latest session score, not a mean over all sessions.
	AverageScore         int             `json:"average_score"`
	TotalPlayTime        int             `json:"total_play_time"` // seconds
	SkillLevels          map[Subject]int `json:"skill_levels"`
	DifficultyPreference int             `json:"difficulty_preference"` // suggested starting difficulty, 1-4
}

// NewUserStats returns zeroed stats with level-1 skills for every core subject.
func NewUserStats(profileID int64) *UserStats {
	return &UserStats{
		ProfileID: profileID,
		SkillLevels: map[Subject]int{
			SubjectMathematics: 1,
			SubjectScience:     1,
			SubjectLanguage:    1,
			SubjectHistory:     1,
			SubjectGeography:   1,
			SubjectLogic:       1,
			SubjectMemory:      1,
			SubjectCreativity:  1,
		},
		DifficultyPreference: 1,
	}
}

// LeaderboardEntry is one row of the cross-profile leaderboard.
type LeaderboardEntry struct {
	ProfileID          int64  `json:"profile_id"`
	Name               string `json:"name"`
	TotalPuzzlesSolved int    `json:"total_puzzles_solved"`
	AverageScore       int    `json:"average_score"`
	LongestStreak      int    `json:"longest_streak"`
}
