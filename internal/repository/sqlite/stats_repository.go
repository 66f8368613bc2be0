package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Get(ctx context.Context, profileID int64) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("getting stats: profile_id=%d", profileID)

	var s models.UserStats
	err := r.db.QueryRowContext(ctx, `
SELECT profile_id, total_puzzles_solved, current_streak, longest_streak, average_score, total_play_time, difficulty_preference
FROM user_stats
WHERE profile_id = ?
`, profileID).Scan(&s.ProfileID, &s.TotalPuzzlesSolved, &s.CurrentStreak, &s.LongestStreak, &s.AverageScore, &s.TotalPlayTime, &s.DifficultyPreference)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("stats not found: profile_id=%d", profileID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get stats: %v", err)
		return nil, err
	}

	s.SkillLevels = make(map[models.Subject]int)
	rows, err := r.db.QueryContext(ctx, `
SELECT subject, level
FROM skill_levels
WHERE profile_id = ?
`, profileID)
	if err != nil {
		log.Error("failed to get skill levels: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var subject models.Subject
		var level int
		if err := rows.Scan(&subject, &level); err != nil {
			log.Error("failed to scan skill level row: %v", err)
			return nil, err
		}
		s.SkillLevels[subject] = level
	}
	return &s, rows.Err()
}

func (r *statsRepository) Save(ctx context.Context, stats models.UserStats) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("saving stats: profile_id=%d, solved=%d, streak=%d",
		stats.ProfileID, stats.TotalPuzzlesSolved, stats.CurrentStreak)

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO user_stats (profile_id, total_puzzles_solved, current_streak, longest_streak, average_score, total_play_time, difficulty_preference)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(profile_id) DO UPDATE SET
    total_puzzles_solved = excluded.total_puzzles_solved,
    current_streak = excluded.current_streak,
    longest_streak = excluded.longest_streak,
    average_score = excluded.average_score,
    total_play_time = excluded.total_play_time,
    difficulty_preference = excluded.difficulty_preference
`, stats.ProfileID, stats.TotalPuzzlesSolved, stats.CurrentStreak, stats.LongestStreak,
			stats.AverageScore, stats.TotalPlayTime, stats.DifficultyPreference); err != nil {
			log.Error("failed to save stats: %v", err)
			return err
		}

		for subject, level := range stats.SkillLevels {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO skill_levels (profile_id, subject, level)
VALUES (?, ?, ?)
ON CONFLICT(profile_id, subject) DO UPDATE SET level = excluded.level
`, stats.ProfileID, subject, level); err != nil {
				log.Error("failed to save skill level %s: %v", subject, err)
				return err
			}
		}
		return nil
	})
}

func (r *statsRepository) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("building leaderboard: limit=%d", limit)

	if limit <= 0 {
		limit = 10
	}

	query, args, err := sqlBuilder.Select(
		"s.profile_id", "p.name", "s.total_puzzles_solved", "s.average_score", "s.longest_streak",
	).
		From("user_stats s").
		Join("profiles p ON p.id = s.profile_id").
		OrderBy("s.total_puzzles_solved DESC", "s.average_score DESC", "p.name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.ProfileID, &e.Name, &e.TotalPuzzlesSolved, &e.AverageScore, &e.LongestStreak); err != nil {
			log.Error("failed to scan leaderboard row: %v", err)
			return nil, err
		}
		entries = append(entries, e)
	}

	log.Debug("leaderboard has %d entries", len(entries))
	return entries, rows.Err()
}
