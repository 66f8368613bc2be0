package jobs

import (
	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
	"github.com/mira/puzzleacademy/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	archivePool *worker.Pool
	sessionRepo repository.SessionRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(archivePool *worker.Pool, sessionRepo repository.SessionRepository) JobQueue {
	return &WorkerQueue{
		archivePool: archivePool,
		sessionRepo: sessionRepo,
	}
}

func (q *WorkerQueue) EnqueueSessionArchive(session models.Session) error {
	return q.archivePool.Submit(&worker.ArchiveSessionJob{
		SessionRepo: q.sessionRepo,
		Session:     session,
	})
}
