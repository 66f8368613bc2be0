package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/mira/puzzleacademy/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Archive(ctx context.Context, session models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) History(ctx context.Context, filter models.HistoryFilter) ([]models.SessionSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionSummary), args.Error(1)
}

func (m *MockSessionRepository) CountHistory(ctx context.Context, filter models.HistoryFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
