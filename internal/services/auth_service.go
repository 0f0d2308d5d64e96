package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"acmedash/internal/common"
	"acmedash/internal/models"
	"acmedash/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks submitted credentials against stored password
// hashes and issues session tokens.
type AuthService interface {
	// Authorize returns the matched user, or (nil, nil) when the
	// credentials are malformed, the user is unknown, or the password
	// does not match. A non-nil error means the lookup itself failed;
	// it is never returned for a simple mismatch.
	Authorize(ctx context.Context, email, password string) (*models.SessionUser, error)

	// Authenticate wraps Authorize and classifies its outcome: a
	// credential mismatch and a backend fault each become an
	// *common.AuthError; success yields a signed session token.
	Authenticate(ctx context.Context, email, password string) (*models.Session, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	validate   *validator.Validate
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		validate:   validator.New(),
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Authorize(ctx context.Context, email, password string) (*models.SessionUser, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, nil
	}
	if len(password) < 6 {
		return nil, nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	// Deliberately a fresh struct so no password material rides along.
	return &models.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// sessionClaims is the session token payload.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := s.Authorize(ctx, email, password)
	if err != nil {
		return nil, &common.AuthError{Type: common.AuthErrorBackend, Err: err}
	}
	if user == nil {
		return nil, &common.AuthError{Type: common.AuthErrorCredentials}
	}

	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "acmedash",
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		// Signing failures are not auth failures; propagate unclassified.
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &models.Session{User: *user, Token: token}, nil
}
