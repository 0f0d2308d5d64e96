package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"acmedash/internal/common"
	"acmedash/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret-123"

type AuthServiceTestSuite struct {
	suite.Suite
	repo *MockUserRepository
	svc  AuthService
	ctx  context.Context
	user *models.User
}

func (suite *AuthServiceTestSuite) SetupTest() {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(suite.T(), err)

	suite.repo = new(MockUserRepository)
	suite.svc = NewAuthService(suite.repo, "test-secret", time.Hour)
	suite.ctx = context.Background()
	suite.user = &models.User{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: string(hash),
	}
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestAuthorize_Success() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(suite.user, nil)

	got, err := suite.svc.Authorize(suite.ctx, suite.user.Email, testPassword)
	assert.NoError(suite.T(), err)
	require.NotNil(suite.T(), got)
	assert.Equal(suite.T(), suite.user.ID, got.ID)
	assert.Equal(suite.T(), suite.user.Email, got.Email)
	assert.Equal(suite.T(), suite.user.Name, got.Name)
}

func (suite *AuthServiceTestSuite) TestAuthorize_NoPasswordInResult() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(suite.user, nil)

	got, err := suite.svc.Authorize(suite.ctx, suite.user.Email, testPassword)
	require.NoError(suite.T(), err)

	// The serialized identity must carry no password material.
	data, err := json.Marshal(got)
	require.NoError(suite.T(), err)
	assert.NotContains(suite.T(), string(data), "password")
	assert.NotContains(suite.T(), string(data), suite.user.PasswordHash)
}

func (suite *AuthServiceTestSuite) TestAuthorize_WrongPassword() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(suite.user, nil)

	got, err := suite.svc.Authorize(suite.ctx, suite.user.Email, "wrong-password")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *AuthServiceTestSuite) TestAuthorize_UnknownEmail() {
	suite.repo.On("GetByEmail", suite.ctx, "nobody@nextmail.com").Return(nil, common.ErrNotFound)

	got, err := suite.svc.Authorize(suite.ctx, "nobody@nextmail.com", testPassword)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)
}

func (suite *AuthServiceTestSuite) TestAuthorize_MalformedCredentials() {
	// Invalid email and short password never reach the repository.
	got, err := suite.svc.Authorize(suite.ctx, "not-an-email", testPassword)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)

	got, err = suite.svc.Authorize(suite.ctx, suite.user.Email, "short")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), got)

	suite.repo.AssertNotCalled(suite.T(), "GetByEmail", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestAuthorize_LookupFaultPropagates() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(nil, errors.New("connection refused"))

	_, err := suite.svc.Authorize(suite.ctx, suite.user.Email, testPassword)
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_Success() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(suite.user, nil)

	session, err := suite.svc.Authenticate(suite.ctx, suite.user.Email, testPassword)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.user.ID, session.User.ID)

	// The token is a valid HS256 JWT for the user.
	token, err := jwt.ParseWithClaims(session.Token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(suite.T(), err)
	claims := token.Claims.(*sessionClaims)
	assert.Equal(suite.T(), suite.user.ID.String(), claims.Subject)
	assert.Equal(suite.T(), suite.user.Email, claims.Email)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_CredentialMismatch() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(suite.user, nil)

	_, err := suite.svc.Authenticate(suite.ctx, suite.user.Email, "wrong-password")
	var authErr *common.AuthError
	require.ErrorAs(suite.T(), err, &authErr)
	assert.Equal(suite.T(), common.AuthErrorCredentials, authErr.Type)
}

func (suite *AuthServiceTestSuite) TestAuthenticate_BackendFault() {
	suite.repo.On("GetByEmail", suite.ctx, suite.user.Email).Return(nil, errors.New("connection refused"))

	_, err := suite.svc.Authenticate(suite.ctx, suite.user.Email, testPassword)
	var authErr *common.AuthError
	require.ErrorAs(suite.T(), err, &authErr)
	assert.Equal(suite.T(), common.AuthErrorBackend, authErr.Type)
}
