package repository

import (
	"context"

	"github.com/mira/puzzleacademy/internal/models"
)

// ProfileRepository handles player profile data access. Lookups return
// (nil, nil) when the profile does not exist.
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, name string, age int) (*models.Profile, error)
	Delete(ctx context.Context, id int64) error
}

// StatsRepository handles aggregate user statistics.
type StatsRepository interface {
	Get(ctx context.Context, profileID int64) (*models.UserStats, error)
	Save(ctx context.Context, stats models.UserStats) error
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// SessionRepository archives completed sessions and serves play history.
type SessionRepository interface {
	Archive(ctx context.Context, session models.Session) error
	History(ctx context.Context, filter models.HistoryFilter) ([]models.SessionSummary, error)
	CountHistory(ctx context.Context, filter models.HistoryFilter) (int, error)
}
