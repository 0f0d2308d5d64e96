package repositories

import (
	"context"
	"errors"
	"testing"

	"acmedash/internal/common"
	"acmedash/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    UserRepository
	context context.Context
}

func (suite *UserRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewUserRepo(mock)
	suite.context = context.Background()
}

func (suite *UserRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}

func (suite *UserRepoTestSuite) TestGetByEmail_Found() {
	id := uuid.New()
	suite.mock.ExpectQuery(`SELECT id, name, email, password_hash
		FROM users
		WHERE email = \$1`).
		WithArgs("user@nextmail.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash"}).
			AddRow(id, "User", "user@nextmail.com", "$2a$10$hash"))

	user, err := suite.repo.GetByEmail(suite.context, "user@nextmail.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), id, user.ID)
	assert.Equal(suite.T(), "$2a$10$hash", user.PasswordHash)
}

func (suite *UserRepoTestSuite) TestGetByEmail_NotFound() {
	suite.mock.ExpectQuery(`FROM users`).
		WithArgs("nobody@nextmail.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.GetByEmail(suite.context, "nobody@nextmail.com")
	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *UserRepoTestSuite) TestGetByEmail_QueryFaultPropagates() {
	suite.mock.ExpectQuery(`FROM users`).
		WithArgs("user@nextmail.com").
		WillReturnError(errors.New("connection reset"))

	_, err := suite.repo.GetByEmail(suite.context, "user@nextmail.com")
	require.Error(suite.T(), err)
	assert.NotErrorIs(suite.T(), err, common.ErrNotFound)
}

func (suite *UserRepoTestSuite) TestUpsert_NewRow() {
	user := &models.User{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: "$2a$10$hash",
	}
	suite.mock.ExpectExec(`INSERT INTO users \(id, name, email, password_hash\)
		VALUES \(\$1, \$2, \$3, \$4\)
		ON CONFLICT \(email\) DO NOTHING`).
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Upsert(suite.context, user))
}

func (suite *UserRepoTestSuite) TestUpsert_ExistingEmailIsLeftUntouched() {
	user := &models.User{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: "$2a$10$newhash",
	}
	suite.mock.ExpectExec(`ON CONFLICT \(email\) DO NOTHING`).
		WithArgs(user.ID, user.Name, user.Email, user.PasswordHash).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	assert.NoError(suite.T(), suite.repo.Upsert(suite.context, user))
}
