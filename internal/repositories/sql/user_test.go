package sql

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/models"
	"github.com/fsdevblog/bookmarks/internal/repositories"
)

type UserRepoSuite struct {
	suite.Suite
	repo *UserRepo
	ctx  context.Context
}

func (s *UserRepoSuite) SetupTest() {
	conn, err := db.NewSQLite(":memory:")
	s.Require().NoError(err)

	s.repo = NewUserRepo(conn, testLogger())
	s.ctx = context.Background()
}

func (s *UserRepoSuite) TestCreateAndFind() {
	user := models.User{Username: "bob", Email: "bob@test.com", Password: gofakeit.Password(true, true, true, false, false, 20)}
	s.Require().NoError(s.repo.Create(s.ctx, &user))
	s.NotZero(user.ID)

	byEmail, emailErr := s.repo.GetByEmail(s.ctx, "bob@test.com")
	s.Require().NoError(emailErr)
	s.Equal(user.ID, byEmail.ID)

	byUsername, usernameErr := s.repo.GetByUsername(s.ctx, "bob")
	s.Require().NoError(usernameErr)
	s.Equal(user.ID, byUsername.ID)

	byID, idErr := s.repo.GetByID(s.ctx, user.ID)
	s.Require().NoError(idErr)
	s.Equal("bob", byID.Username)
}

func (s *UserRepoSuite) TestCreate_Duplicates() {
	user := models.User{Username: "bob", Email: "bob@test.com", Password: "hash"}
	s.Require().NoError(s.repo.Create(s.ctx, &user))

	dupEmail := models.User{Username: "alice", Email: "bob@test.com", Password: "hash"}
	s.ErrorIs(s.repo.Create(s.ctx, &dupEmail), repositories.ErrDuplicateKey)

	dupUsername := models.User{Username: "bob", Email: "alice@test.com", Password: "hash"}
	s.ErrorIs(s.repo.Create(s.ctx, &dupUsername), repositories.ErrDuplicateKey)
}

func (s *UserRepoSuite) TestGet_NotFound() {
	_, emailErr := s.repo.GetByEmail(s.ctx, "ghost@test.com")
	s.ErrorIs(emailErr, repositories.ErrNotFound)

	_, idErr := s.repo.GetByID(s.ctx, 404)
	s.ErrorIs(idErr, repositories.ErrNotFound)
}

func TestUserRepoSuite(t *testing.T) {
	suite.Run(t, new(UserRepoSuite))
}
