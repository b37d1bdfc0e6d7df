package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/domain"
	apperrors "github.com/bgmirko/aws-lambda-books-app/pkg/errors"
)

// RegistrationService mirrors confirmed identities into the user table
type RegistrationService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(users ports.UserRepository, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		users:  users,
		logger: logger,
	}
}

// MirrorConfirmedUser writes a user record keyed by the identity subject.
// The id comes from the provider, never generated here; the email has
// already been verified by the provider before the trigger fires.
func (s *RegistrationService) MirrorConfirmedUser(ctx context.Context, subject, email string) error {
	if subject == "" {
		return apperrors.NewValidationError("subject identifier is required")
	}

	record := domain.Record{
		domain.UserIDAttribute:    subject,
		domain.UserEmailAttribute: email,
	}

	if err := s.users.Put(ctx, record); err != nil {
		return err
	}

	s.logger.Info("Confirmed user mirrored",
		zap.String("uuid", subject),
		zap.String("email", email),
	)

	return nil
}
