package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mira/puzzleacademy/internal/models"
	"github.com/mira/puzzleacademy/internal/repository"
	"github.com/mira/puzzleacademy/internal/repository/sqlite"
	"github.com/mira/puzzleacademy/internal/testutil"
)

type StatsRepositorySuite struct {
	suite.Suite
	db       *sql.DB
	repo     repository.StatsRepository
	profiles repository.ProfileRepository
}

func (s *StatsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStatsRepository(s.db)
	s.profiles = sqlite.NewProfileRepository(s.db)
}

func (s *StatsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StatsRepositorySuite) createProfile(name string, age int) int64 {
	p, err := s.profiles.Create(context.Background(), name, age)
	s.Require().NoError(err)
	return p.ID
}

func (s *StatsRepositorySuite) TestGet_MissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), 999)
	s.NoError(err)
	s.Nil(got)
}

func (s *StatsRepositorySuite) TestSaveAndGet_RoundtripWithSkillLevels() {
	ctx := context.Background()
	id := s.createProfile("ada", 10)

	stats := models.UserStats{
		ProfileID:          id,
		TotalPuzzlesSolved: 12,
		CurrentStreak:      3,
		LongestStreak:      5,
		AverageScore:       42,
		TotalPlayTime:      600,
		SkillLevels: map[models.Subject]int{
			models.SubjectMathematics: 2,
			models.SubjectLogic:       3,
		},
		DifficultyPreference: 2,
	}
	s.Require().NoError(s.repo.Save(ctx, stats))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(12, got.TotalPuzzlesSolved)
	s.Equal(42, got.AverageScore)
	s.Equal(2, got.SkillLevels[models.SubjectMathematics])
	s.Equal(3, got.SkillLevels[models.SubjectLogic])
}

func (s *StatsRepositorySuite) TestSave_UpsertsExistingRow() {
	ctx := context.Background()
	id := s.createProfile("ada", 10)

	first := models.UserStats{ProfileID: id, TotalPuzzlesSolved: 1,
		SkillLevels: map[models.Subject]int{models.SubjectMathematics: 1}}
	s.Require().NoError(s.repo.Save(ctx, first))

	second := first
	second.TotalPuzzlesSolved = 4
	second.SkillLevels = map[models.Subject]int{models.SubjectMathematics: 2}
	s.Require().NoError(s.repo.Save(ctx, second))

	got, err := s.repo.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(4, got.TotalPuzzlesSolved)
	s.Equal(2, got.SkillLevels[models.SubjectMathematics])

	var rows int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM user_stats`).Scan(&rows))
	s.Equal(1, rows, "saving twice keeps a single row")
}

func (s *StatsRepositorySuite) TestLeaderboard_Ordering() {
	ctx := context.Background()
	ada := s.createProfile("ada", 10)
	bob := s.createProfile("bob", 30)
	eve := s.createProfile("eve", 20)

	s.Require().NoError(s.repo.Save(ctx, models.UserStats{ProfileID: ada, TotalPuzzlesSolved: 10, AverageScore: 50}))
	s.Require().NoError(s.repo.Save(ctx, models.UserStats{ProfileID: bob, TotalPuzzlesSolved: 10, AverageScore: 80}))
	s.Require().NoError(s.repo.Save(ctx, models.UserStats{ProfileID: eve, TotalPuzzlesSolved: 25, AverageScore: 10}))

	entries, err := s.repo.Leaderboard(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("eve", entries[0].Name, "most puzzles solved ranks first")
	s.Equal("bob", entries[1].Name, "average score breaks the tie")
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
