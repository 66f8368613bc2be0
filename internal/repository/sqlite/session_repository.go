package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Archive(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("archiving session: id=%s, profile_id=%d", session.ID, session.ProfileID)

	endedAt := session.StartTime
	if session.EndTime != nil {
		endedAt = *session.EndTime
	}

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO sessions (id, profile_id, score, correct_answers, puzzle_count, hints_used, time_spent, completed, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING
`, session.ID, session.ProfileID, session.Score, session.CorrectAnswers, len(session.Puzzles),
			session.HintsUsedTotal, session.TimeSpent, session.Completed, session.StartTime, endedAt); err != nil {
			log.Error("failed to insert session: %v", err)
			return err
		}

		for _, a := range session.Answers {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO session_answers (session_id, puzzle_id, subject, was_correct, time_seconds, hints_used, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, session.ID, a.PuzzleID, a.Subject, a.WasCorrect, a.TimeSeconds, a.HintsUsed, a.SubmittedAt); err != nil {
				log.Error("failed to insert session answer: %v", err)
				return err
			}
		}

		log.Debug("session %s archived with %d answers", session.ID, len(session.Answers))
		return nil
	})
}

func (r *sessionRepository) History(ctx context.Context, filter models.HistoryFilter) ([]models.SessionSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("listing session history: profile_id=%d, subject=%s", filter.ProfileID, filter.Subject)

	query := sqlBuilder.Select(
		"id", "profile_id", "score", "correct_answers", "puzzle_count",
		"hints_used", "time_spent", "completed", "started_at", "ended_at",
	).From("sessions")
	query = applyHistoryFilter(query, filter)

	// Safe ORDER BY with validation
	orderBy := "ended_at"
	switch filter.OrderBy {
	case "ended_at", "started_at", "score":
		orderBy = filter.OrderBy
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build history query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list session history: %v", err)
		return nil, err
	}
	defer rows.Close()

	var summaries []models.SessionSummary
	for rows.Next() {
		var s models.SessionSummary
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Score, &s.CorrectAnswers, &s.PuzzleCount,
			&s.HintsUsed, &s.TimeSpent, &s.Completed, &s.StartedAt, &s.EndedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		summaries = append(summaries, s)
	}

	log.Debug("found %d archived sessions", len(summaries))
	return summaries, rows.Err()
}

func (r *sessionRepository) CountHistory(ctx context.Context, filter models.HistoryFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	query := sqlBuilder.Select("COUNT(*)").From("sessions")
	query = applyHistoryFilter(query, filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count session history: %v", err)
		return 0, err
	}
	return count, nil
}

// applyHistoryFilter adds the dynamic WHERE clauses shared by History and
// CountHistory.
func applyHistoryFilter(query squirrel.SelectBuilder, filter models.HistoryFilter) squirrel.SelectBuilder {
	if filter.ProfileID != 0 {
		query = query.Where(squirrel.Eq{"profile_id": filter.ProfileID})
	}
	if filter.CompletedOnly {
		query = query.Where(squirrel.Eq{"completed": true})
	}
	if filter.Subject != "" {
		query = query.Where(
			"id IN (SELECT session_id FROM session_answers WHERE subject = ?)",
			filter.Subject,
		)
	}
	return query
}
