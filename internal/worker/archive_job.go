package worker

import (
	"context"

	"github.com/mira/puzzleacademy/internal/logger"
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
)

// ArchiveSessionJob persists a finished session so it shows up in play
// history. It runs off the request path; the player never waits on it.
type ArchiveSessionJob struct {
	SessionRepo repository.SessionRepository
	Session     models.Session
}

func (j *ArchiveSessionJob) Name() string { return "archive_session" }

func (j *ArchiveSessionJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"session_id": j.Session.ID,
		"profile_id": j.Session.ProfileID,
	})
	log.Debug("archiving session")

	if err := j.SessionRepo.Archive(ctx, j.Session); err != nil {
		log.Error("failed to archive session: %v", err)
		return err
	}

	log.Info("session archived: score=%d, answers=%d", j.Session.Score, len(j.Session.Answers))
	return nil
}
