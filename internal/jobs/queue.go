package jobs

import "github.com/mira/puzzleacademy/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueSessionArchive(session models.Session) error
}
