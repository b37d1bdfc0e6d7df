package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
)

// AuthService delegates credential exchange to the identity provider
type AuthService struct {
	identity ports.IdentityProvider
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(identity ports.IdentityProvider, logger *zap.Logger) *AuthService {
	return &AuthService{
		identity: identity,
		logger:   logger,
	}
}

// Login exchanges the credentials for a token pair. Every failure mode
// collapses into a single unauthorized error so nothing about the account
// or the provider leaks to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	tokens, err := s.identity.ExchangeCredentials(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, apperrors.NewUnauthorizedError("Login failed").WithCause(err)
	}

	s.logger.Info("Login successful", zap.String("username", username))

	return tokens, nil
}
