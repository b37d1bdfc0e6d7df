package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bgmirko/aws-lambda-books-app/application/ports"
	"github.com/bgmirko/aws-lambda-books-app/domain"
)

// UserService implements user CRUD and the role-filtered lookup
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// List returns every user record. Empty slice when the table is empty.
func (s *UserService) List(ctx context.Context) ([]domain.Record, error) {
	return s.users.List(ctx)
}

// Get returns the user by primary key, or an empty record when absent.
// Callers depend on the empty-mapping sentinel, so absence is not an error.
func (s *UserService) Get(ctx context.Context, userUUID string) (domain.Record, error) {
	user, err := s.users.GetByID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return domain.Record{}, nil
	}
	return user, nil
}

// GetByRole looks the user up by primary key with an additional substring
// check on the role attribute.
func (s *UserService) GetByRole(ctx context.Context, userUUID, role string) ([]domain.Record, error) {
	return s.users.QueryByRole(ctx, userUUID, role)
}

// Create stores a new user under a freshly generated identifier,
// overwriting any caller-supplied uuid.
func (s *UserService) Create(ctx context.Context, attributes domain.Record) (domain.Record, error) {
	if attributes == nil {
		attributes = domain.Record{}
	}
	attributes[domain.UserIDAttribute] = uuid.NewString()

	if err := s.users.Put(ctx, attributes); err != nil {
		return nil, err
	}

	s.logger.Info("User created", zap.String("uuid", attributes.String(domain.UserIDAttribute)))

	return attributes, nil
}

// Delete removes a user by primary key.
func (s *UserService) Delete(ctx context.Context, userUUID string) error {
	return s.users.Delete(ctx, userUUID)
}

// Update applies a partial field set to an existing user.
func (s *UserService) Update(ctx context.Context, userUUID string, fields domain.Record) error {
	return s.users.Update(ctx, userUUID, fields)
}
