package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
	"github.com/mira/puzzleacademy/internal/repository/sqlite"
	"github.com/mira/puzzleacademy/internal/testutil"
)

type SessionRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	repo     repository.SessionRepository
	profiles repository.ProfileRepository
}

func (s *SessionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSessionRepository(s.db)
	s.profiles = sqlite.NewProfileRepository(s.db)
}

func (s *SessionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionRepositorySuite) finishedSession(id string, profileID int64, score int, subject models.Subject) models.Session {
	started := time.Now().Add(-5 * time.Minute)
	ended := time.Now()
	return models.Session{
		ID:             id,
		ProfileID:      profileID,
		Puzzles:        []models.Puzzle{{ID: "p1"}, {ID: "p2"}},
		Score:          score,
		CorrectAnswers: 1,
		HintsUsedTotal: 2,
		TimeSpent:      120,
		Completed:      true,
		StartTime:      started,
		EndTime:        &ended,
		Answers: []models.AnswerRecord{
			{PuzzleID: "p1", Subject: subject, WasCorrect: true, TimeSeconds: 60, SubmittedAt: ended},
			{PuzzleID: "p2", Subject: subject, WasCorrect: false, TimeSeconds: 60, SubmittedAt: ended},
		},
	}
}

func (s *SessionRepositorySuite) TestArchiveAndHistory() {
	ctx := context.Background()
	p, err := s.profiles.Create(ctx, "ada", 10)
	s.Require().NoError(err)

	session := s.finishedSession("sess-1", p.ID, 25, models.SubjectMathematics)
	s.Require().NoError(s.repo.Archive(ctx, session))

	got, err := s.repo.History(ctx, models.HistoryFilter{ProfileID: p.ID})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("sess-1", got[0].ID)
	s.Equal(25, got[0].Score)
	s.Equal(2, got[0].PuzzleCount)
	s.Equal(2, got[0].HintsUsed)
	s.True(got[0].Completed)

	var answers int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM session_answers WHERE session_id = 'sess-1'`).Scan(&answers))
	s.Equal(2, answers)
}

func (s *SessionRepositorySuite) TestArchive_SameSessionTwiceIsSafe() {
	ctx := context.Background()
	p, err := s.profiles.Create(ctx, "ada", 10)
	s.Require().NoError(err)

	session := s.finishedSession("sess-1", p.ID, 25, models.SubjectMathematics)
	s.Require().NoError(s.repo.Archive(ctx, session))
	s.Require().NoError(s.repo.Archive(ctx, session))

	count, err := s.repo.CountHistory(ctx, models.HistoryFilter{ProfileID: p.ID})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *SessionRepositorySuite) TestHistory_SubjectFilter() {
	ctx := context.Background()
	p, err := s.profiles.Create(ctx, "ada", 10)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Archive(ctx, s.finishedSession("sess-math", p.ID, 10, models.SubjectMathematics)))
	s.Require().NoError(s.repo.Archive(ctx, s.finishedSession("sess-logic", p.ID, 20, models.SubjectLogic)))

	got, err := s.repo.History(ctx, models.HistoryFilter{ProfileID: p.ID, Subject: models.SubjectLogic})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("sess-logic", got[0].ID)

	count, err := s.repo.CountHistory(ctx, models.HistoryFilter{ProfileID: p.ID, Subject: models.SubjectLogic})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *SessionRepositorySuite) TestHistory_OrderAndPagination() {
	ctx := context.Background()
	p, err := s.profiles.Create(ctx, "ada", 10)
	s.Require().NoError(err)

	for i, id := range []string{"sess-a", "sess-b", "sess-c"} {
		sess := s.finishedSession(id, p.ID, (i+1)*10, models.SubjectMathematics)
		s.Require().NoError(s.repo.Archive(ctx, sess))
	}

	got, err := s.repo.History(ctx, models.HistoryFilter{
		ProfileID: p.ID,
		OrderBy:   "score",
		OrderDir:  "ASC",
		Limit:     2,
	})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(10, got[0].Score)
	s.Equal(20, got[1].Score)

	next, err := s.repo.History(ctx, models.HistoryFilter{
		ProfileID: p.ID,
		OrderBy:   "score",
		OrderDir:  "ASC",
		Limit:     2,
		Offset:    2,
	})
	s.Require().NoError(err)
	s.Require().Len(next, 1)
	s.Equal(30, next[0].Score)
}

func (s *SessionRepositorySuite) TestHistory_InvalidOrderByFallsBack() {
	ctx := context.Background()
	p, err := s.profiles.Create(ctx, "ada", 10)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Archive(ctx, s.finishedSession("sess-1", p.ID, 10, models.SubjectMathematics)))

	// A hostile order_by value must not reach the SQL string.
	got, err := s.repo.History(ctx, models.HistoryFilter{
		ProfileID: p.ID,
		OrderBy:   "score; DROP TABLE sessions",
	})
	s.Require().NoError(err)
	s.Len(got, 1)
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositorySuite))
}
