package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/mira/puzzleacademy/internal/models"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueSessionArchive(session models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}
