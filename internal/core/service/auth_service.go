package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cumplia/compliance-api/internal/api/metrics"
	"github.com/cumplia/compliance-api/internal/core/domain"
	"github.com/cumplia/compliance-api/internal/core/ports"
	"github.com/cumplia/compliance-api/internal/pkg/password"
	"github.com/cumplia/compliance-api/internal/pkg/token"
)

// AuthService implements login and password rotation.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a session token. An unknown
// email, an inactive account, and a wrong password are indistinguishable to
// the caller: all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, *domain.User, error) {
	if email == "" || plaintext == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Active || !password.Verify(plaintext, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Email, user.Role, user.CompanyID)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login")
	return tok, user, nil
}

// ChangePassword re-verifies the current plaintext before rotating to the new
// one, even though the caller already holds a valid session token.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(current, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(next)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("password rotated")
	return nil
}
