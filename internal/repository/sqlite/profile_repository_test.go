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

type ProfileRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.ProfileRepository
}

func (s *ProfileRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewProfileRepository(s.db)
}

func (s *ProfileRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ProfileRepositorySuite) TestCreateAndGet() {
	ctx := context.Background()

	created, err := s.repo.Create(ctx, "ada", 10)
	s.Require().NoError(err)
	s.NotZero(created.ID)
	s.Equal("ada", created.Name)
	s.Equal(models.AgeGroupChild, created.AgeGroup, "age group derived from age")

	got, err := s.repo.Get(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(created.ID, got.ID)
	s.Equal(10, got.Age)
}

func (s *ProfileRepositorySuite) TestGet_MissingReturnsNil() {
	got, err := s.repo.Get(context.Background(), 12345)
	s.NoError(err)
	s.Nil(got)
}

func (s *ProfileRepositorySuite) TestList() {
	ctx := context.Background()

	_, err := s.repo.Create(ctx, "ada", 10)
	s.Require().NoError(err)
	_, err = s.repo.Create(ctx, "bob", 30)
	s.Require().NoError(err)

	profiles, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Len(profiles, 2)
	s.Equal(models.AgeGroupAdult, profiles[1].AgeGroup)
}

func (s *ProfileRepositorySuite) TestDelete_Cascades() {
	ctx := context.Background()

	p, err := s.repo.Create(ctx, "ada", 10)
	s.Require().NoError(err)

	// Seed related rows the delete must sweep.
	_, err = s.db.ExecContext(ctx, `INSERT INTO user_stats (profile_id) VALUES (?)`, p.ID)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(ctx, `INSERT INTO skill_levels (profile_id, subject, level) VALUES (?, 'mathematics', 2)`, p.ID)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, profile_id, started_at, ended_at) VALUES ('sess-1', ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`, p.ID)
	s.Require().NoError(err)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_answers (session_id, puzzle_id, subject, submitted_at) VALUES ('sess-1', 'math-001', 'mathematics', CURRENT_TIMESTAMP)`)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Delete(ctx, p.ID))

	for _, q := range []string{
		`SELECT COUNT(*) FROM profiles`,
		`SELECT COUNT(*) FROM user_stats`,
		`SELECT COUNT(*) FROM skill_levels`,
		`SELECT COUNT(*) FROM sessions`,
		`SELECT COUNT(*) FROM session_answers`,
	} {
		var n int
		s.Require().NoError(s.db.QueryRowContext(ctx, q).Scan(&n))
		s.Zero(n, q)
	}
}

func TestProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositorySuite))
}
